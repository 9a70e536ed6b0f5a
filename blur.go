package seamcarving

import (
	"github.com/FergusonShuai/seam-carving/utils"
)

// blurGray box blurs a grayscale plane in two separable passes. The
// averaging window is truncated at the borders rather than padded, so
// edge pixels average over fewer samples. A radius of zero or less
// returns the plane untouched.
func blurGray(gray []uint8, width, height, radius int) []uint8 {
	if radius <= 0 || width == 0 || height == 0 {
		return gray
	}
	tmp := make([]uint8, len(gray))
	out := make([]uint8, len(gray))

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			lo, hi := utils.Max(x-radius, 0), utils.Min(x+radius, width-1)
			sum := 0
			for i := lo; i <= hi; i++ {
				sum += int(gray[row+i])
			}
			tmp[row+x] = uint8(sum / (hi - lo + 1))
		}
	}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			lo, hi := utils.Max(y-radius, 0), utils.Min(y+radius, height-1)
			sum := 0
			for i := lo; i <= hi; i++ {
				sum += int(tmp[i*width+x])
			}
			out[y*width+x] = uint8(sum / (hi - lo + 1))
		}
	}
	return out
}
