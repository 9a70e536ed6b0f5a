package seamcarving

// grayscale flattens the image into a single luminance plane using the
// standard luma weights. Alpha is dropped.
func grayscale(img *Image) []uint8 {
	gray := make([]uint8, img.Width*img.Height)

	for y := 0; y < img.Height; y++ {
		row := y * img.Stride
		for x := 0; x < img.Width; x++ {
			px := row + x*4
			lum := float32(img.Pix[px])*0.299 + float32(img.Pix[px+1])*0.587 + float32(img.Pix[px+2])*0.114
			gray[x+y*img.Width] = uint8(lum)
		}
	}
	return gray
}
