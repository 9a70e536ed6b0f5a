package seamcarving

import (
	"log"
	"time"

	pigo "github.com/esimov/pigo/core"
	"github.com/pkg/errors"
)

var _ SeamCarver = (*Processor)(nil)

// Processor options
type Processor struct {
	// NewWidth is the width to carve the image down to. With Percentage
	// set it is instead the percentage of columns to carve away, valid
	// between 0 and 99.
	NewWidth int

	// SobelEnergy switches the energy function from the local color
	// gradient to the sobel edge magnitude of the blurred grayscale
	// image.
	SobelEnergy    bool
	SobelThreshold int
	BlurRadius     int

	// FaceDetect protects detected faces from carving. FaceDetector
	// must hold the unpacked cascade classifier when it is set.
	FaceDetect   bool
	FaceAngle    float64
	FaceDetector *pigo.Pigo

	// Mask marks regions to keep, RMask marks regions to carve away
	// first. Both must have the image dimensions and both are carved
	// together with the image to stay aligned.
	Mask  *Image
	RMask *Image

	// Log receives per seam progress lines. A nil logger keeps the
	// processor silent.
	Log *log.Logger

	Percentage bool
}

// Resize implements the SeamCarver interface. It resolves the target
// width from the processor options and carves the image down to it. The
// zero value options leave the image untouched.
func (p *Processor) Resize(img *Image) (*Image, error) {
	if img == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil image")
	}
	if p.NewWidth == 0 && !p.Percentage {
		return img, nil
	}

	width := p.NewWidth
	if p.Percentage {
		if p.NewWidth < 0 || p.NewWidth >= 100 {
			return nil, errors.Wrapf(ErrInvalidArgument, "percentage %d outside of [0, 100)", p.NewWidth)
		}
		// Calculate the number of columns to shave based on the provided percentage.
		pw := img.Width - int(float64(img.Width)-(float64(p.NewWidth)/100*float64(img.Width)))
		width = img.Width - pw
	}

	if err := p.resizeTo(img, width); err != nil {
		return nil, err
	}
	return img, nil
}

// resizeTo carves img down to the given width, one seam per iteration.
// Every iteration recomputes the energy map on the current pixel data,
// since the previous removal shifts the gradients around the carved
// path.
func (p *Processor) resizeTo(img *Image, width int) error {
	if img == nil {
		return errors.Wrap(ErrInvalidArgument, "nil image")
	}
	if width < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative target width %d", width)
	}
	if width > img.Width {
		return errors.Wrapf(ErrUnsupportedOperation, "cannot carve the image from width %d up to %d", img.Width, width)
	}
	pxToRemove := img.Width - width
	if pxToRemove == 0 {
		return nil
	}
	if img.Height == 0 {
		return errors.Wrap(ErrInvalidArgument, "cannot carve an image with zero height")
	}

	start := time.Now()
	for i := 0; i < pxToRemove; i++ {
		c := NewCarver(img.Width, img.Height)
		if _, err := c.ComputeEnergy(p, img); err != nil {
			return err
		}
		seam := c.FindLowestEnergySeam()
		if err := c.RemoveSeam(img, seam); err != nil {
			return err
		}

		// The masks shrink in lockstep with the image, otherwise their
		// regions would drift off the pixels they mark.
		if p.Mask != nil {
			if err := c.RemoveSeam(p.Mask, seam); err != nil {
				return errors.WithMessage(err, "protection mask")
			}
			p.Mask.Width--
		}
		if p.RMask != nil {
			if err := c.RemoveSeam(p.RMask, seam); err != nil {
				return errors.WithMessage(err, "removal mask")
			}
			p.RMask.Width--
		}
		img.Width--

		if p.Log != nil {
			p.Log.Printf("removed seam %d of %d, width %d, elapsed %v",
				i+1, pxToRemove, img.Width, time.Since(start).Round(time.Millisecond))
		}
	}
	return nil
}
