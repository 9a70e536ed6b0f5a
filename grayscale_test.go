package seamcarving

import (
	"image/color"
	"testing"
)

func TestGrayscale_LumaWeights(t *testing.T) {
	img := NewImage(4, 1)
	setPix(img, 0, 0, color.NRGBA{R: 0xff, A: 0xff})
	setPix(img, 1, 0, color.NRGBA{G: 0xff, A: 0xff})
	setPix(img, 2, 0, color.NRGBA{B: 0xff, A: 0xff})
	setPix(img, 3, 0, color.NRGBA{R: 50, G: 100, B: 200, A: 0xff})

	gray := grayscale(img)
	want := []uint8{76, 149, 29, 96}

	for i, w := range want {
		if gray[i] != w {
			t.Errorf("Luminance of pixel %v expected to be %v. Got %v", i, w, gray[i])
		}
	}
}

func TestGrayscale_PlaneIsPackedToLogicalWidth(t *testing.T) {
	// A carved image keeps its stride, the gray plane must follow the
	// logical width instead.
	img := NewImage(5, 2)
	img.Width = 3
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			setPix(img, x, y, color.NRGBA{R: 0xff, A: 0xff})
		}
	}

	gray := grayscale(img)
	if len(gray) != 3*2 {
		t.Fatalf("Gray plane length expected to be %v. Got %v", 3*2, len(gray))
	}
	for i, g := range gray {
		if g != 76 {
			t.Errorf("Luminance of pixel %v expected to be 76. Got %v", i, g)
		}
	}
}

func TestGrayscale_UniformMidGray(t *testing.T) {
	img := solidImage(3, 3, color.NRGBA{R: 177, G: 177, B: 177, A: 0xff})

	// The luma weights sum to one, so a neutral gray maps onto itself
	// up to float truncation.
	for i, g := range grayscale(img) {
		if g != 177 && g != 176 {
			t.Errorf("Luminance of pixel %v expected to be 177 or 176. Got %v", i, g)
		}
	}
}

func TestGrayscale_IgnoresAlpha(t *testing.T) {
	img := NewImage(2, 1)
	setPix(img, 0, 0, color.NRGBA{R: 50, G: 100, B: 200, A: 0xff})
	setPix(img, 1, 0, color.NRGBA{R: 50, G: 100, B: 200, A: 3})

	gray := grayscale(img)
	if gray[0] != gray[1] {
		t.Errorf("Alpha should not affect the luminance. Got %v and %v", gray[0], gray[1])
	}
}
