package seamcarving_test

import (
	"fmt"

	seamcarving "github.com/FergusonShuai/seam-carving"
)

func ExampleResizeWidth() {
	img := seamcarving.NewImage(5, 3)

	res, err := seamcarving.ResizeWidth(img, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%dx%d\n", res.Width, res.Height)
	// Output: 3x3
}

func ExampleProcessor_Resize() {
	img := seamcarving.NewImage(10, 4)

	p := &seamcarving.Processor{
		NewWidth:   40,
		Percentage: true,
	}
	res, err := p.Resize(img)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%dx%d\n", res.Width, res.Height)
	// Output: 6x4
}
