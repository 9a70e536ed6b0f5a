/*
Package seamcarving is a content aware image narrowing library, which reduces
the width of the source image seam by seam, eliminating the less important
parts while keeping the visually significant regions intact.

The image pixels live in a fixed stride buffer, so every seam removal shifts
rows in place and only the logical width shrinks. Converting from and back to
the standard image types is a single call on each side.

A simple integration looks like this:

	package main

	import (
		"fmt"

		seamcarving "github.com/FergusonShuai/seam-carving"
	)

	func main() {
		img := seamcarving.FromImage(src)

		p := &seamcarving.Processor{
			NewWidth: img.Width - 120,
		}

		if _, err := p.Resize(img); err != nil {
			fmt.Printf("Error rescaling image: %s", err.Error())
			return
		}
		fmt.Printf("carved down to %dx%d", img.Width, img.Height)
	}
*/
package seamcarving
