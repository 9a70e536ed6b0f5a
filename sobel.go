package seamcarving

import (
	"math"

	"github.com/FergusonShuai/seam-carving/utils"
)

type kernel [][]int32

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// sobelEnergy runs the sobel operator over a grayscale plane and returns
// the edge magnitude of every pixel as its energy.
// See https://en.wikipedia.org/wiki/Sobel_operator
//
// Samples falling outside the plane are substituted with the nearest
// border pixel. Magnitudes cap at 255, and magnitudes not exceeding the
// threshold drop to zero.
func sobelEnergy(gray []uint8, width, height int, threshold float64) []float64 {
	energy := make([]float64, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sumX, sumY int32
			for ky := 0; ky < len(kernelY); ky++ {
				for kx := 0; kx < len(kernelX); kx++ {
					sx := utils.Clamp(x+kx-1, 0, width-1)
					sy := utils.Clamp(y+ky-1, 0, height-1)
					v := int32(gray[sx+sy*width])
					sumX += v * kernelX[ky][kx]
					sumY += v * kernelY[ky][kx]
				}
			}
			magnitude := math.Sqrt(float64(sumX*sumX) + float64(sumY*sumY))
			if magnitude > 255 {
				magnitude = 255
			}
			if magnitude <= threshold {
				magnitude = 0
			}
			energy[x+y*width] = magnitude
		}
	}
	return energy
}
