package seamcarving

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned for malformed input: images and
	// masks with mismatched dimensions, seams that do not span the
	// image, or option values outside their domain.
	ErrInvalidArgument = errors.New("seamcarving: invalid argument")

	// ErrUnsupportedOperation is returned when the requested resize
	// falls outside the carvable range, such as enlarging the image.
	ErrUnsupportedOperation = errors.New("seamcarving: unsupported operation")
)

// SeamCarver is an interface the Processor uses to implement the Resize
// function. It takes the image to carve and returns it narrowed down to
// the configured dimensions.
type SeamCarver interface {
	Resize(*Image) (*Image, error)
}

// Resize resizes the image with the provided carver.
func Resize(s SeamCarver, img *Image) (*Image, error) {
	return s.Resize(img)
}

// ResizeWidth carves img in place down to the requested width using the
// default options and returns it. Any target between zero and the
// current width is honored; widening is not supported.
func ResizeWidth(img *Image, width int) (*Image, error) {
	p := &Processor{NewWidth: width}
	if err := p.resizeTo(img, width); err != nil {
		return nil, err
	}
	return img, nil
}
