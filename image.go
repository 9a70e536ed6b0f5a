package seamcarving

import (
	"image"

	"github.com/disintegration/imaging"
)

// Image is a mutable pixel buffer the carver shrinks in place.
// The backing storage keeps its original row capacity while the logical
// width goes down, so removing a seam never reallocates the buffer.
type Image struct {
	// Pix holds the pixel data in R, G, B, A order. The pixel at (x, y)
	// starts at Pix[y*Stride + x*4].
	Pix []uint8
	// Stride is the Pix distance in bytes between two vertically adjacent
	// pixels. It never changes after allocation.
	Stride int
	// Width and Height are the logical image dimensions. Pixels at
	// x >= Width are leftovers of removed seams and must not be read.
	Width  int
	Height int
}

// NewImage returns a zeroed pixel buffer of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Pix:    make([]uint8, width*height*4),
		Stride: width * 4,
		Width:  width,
		Height: height,
	}
}

// FromImage copies src into a fresh carvable pixel buffer, normalized to
// 8 bit NRGBA channels with the origin moved to (0, 0). The source image
// is left untouched.
func FromImage(src image.Image) *Image {
	img := imaging.Clone(src)
	b := img.Bounds()

	return &Image{
		Pix:    img.Pix,
		Stride: img.Stride,
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}

// ToImage returns the logical image area as a standard NRGBA image.
// The unused trailing columns of the backing storage are left out.
func (img *Image) ToImage() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	rowSize := img.Width * 4

	for y := 0; y < img.Height; y++ {
		si := y * img.Stride
		di := y * dst.Stride
		copy(dst.Pix[di:di+rowSize], img.Pix[si:si+rowSize])
	}
	return dst
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	pix := make([]uint8, len(img.Pix))
	copy(pix, img.Pix)

	return &Image{
		Pix:    pix,
		Stride: img.Stride,
		Width:  img.Width,
		Height: img.Height,
	}
}

// PixOffset returns the index of the first element of Pix that
// corresponds to the pixel at (x, y).
func (img *Image) PixOffset(x, y int) int {
	return y*img.Stride + x*4
}
