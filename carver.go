package seamcarving

import (
	"image"
	"math"

	"github.com/FergusonShuai/seam-carving/utils"
	"github.com/pkg/errors"
)

// Seam is a connected path of points crossing the image from the top row
// to the bottom row, one point per row, each at most one column away from
// its neighbors.
type Seam []Point

// Point is an image coordinate, 0 indexed from the top left corner.
type Point struct {
	X int
	Y int
}

// Carver holds the dimensions of the carvable image area and the energy
// map computed for the current iteration. A Carver is built fresh for
// every seam removal, since the previous removal invalidates the map.
type Carver struct {
	Width  int
	Height int
	energy []float64
}

// maxPixelEnergy is the largest value the gradient energy formula can
// assign to a single pixel: both neighbors at the opposite corner of the
// RGB color cube.
var maxPixelEnergy = math.Sqrt(2 * 3 * 255 * 255)

// Mask pixels with a red channel at or above maskOn mark a region.
const maskOn = 0x80

// NewCarver returns a Carver for an image area of the given dimensions.
func NewCarver(width, height int) *Carver {
	return &Carver{
		Width:  width,
		Height: height,
		energy: make([]float64, width*height),
	}
}

// Get the energy value of the pixel at (x, y).
func (c *Carver) at(x, y int) float64 {
	px := x + y*c.Width
	return c.energy[px]
}

// Set the energy value of the pixel at (x, y).
func (c *Carver) set(x, y int, v float64) {
	px := x + y*c.Width
	c.energy[px] = v
}

// ComputeEnergy fills in the energy map of the carvable image area and
// returns it. The default energy of a pixel is its local horizontal color
// gradient: the squared euclidean RGB distance to the left and to the
// right neighbor summed up and square rooted. Pixels on the vertical
// borders only have the one existing neighbor contribution; the alpha
// channel never counts.
//
// The processor options can switch the energy function to the sobel edge
// magnitude of the grayscale image and stack region adjustments on top of
// the base energy: removal mask regions drop to zero, protective mask
// regions and detected faces receive a penalty no regular seam total can
// reach.
func (c *Carver) ComputeEnergy(p *Processor, img *Image) ([]float64, error) {
	if p == nil {
		p = &Processor{}
	}
	if err := c.checkImage(img); err != nil {
		return nil, err
	}

	if p.SobelEnergy {
		if p.BlurRadius < 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "negative blur radius %d", p.BlurRadius)
		}
		if p.SobelThreshold < 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "negative sobel threshold %d", p.SobelThreshold)
		}
		gray := grayscale(img)
		gray = blurGray(gray, c.Width, c.Height, p.BlurRadius)
		c.energy = sobelEnergy(gray, c.Width, c.Height, float64(p.SobelThreshold))
	} else {
		c.gradientEnergy(img)
	}

	if p.RMask != nil {
		if err := c.applyMask(p.RMask, false); err != nil {
			return nil, errors.WithMessage(err, "removal mask")
		}
	}
	if p.Mask != nil {
		if err := c.applyMask(p.Mask, true); err != nil {
			return nil, errors.WithMessage(err, "protection mask")
		}
	}
	if p.FaceDetect {
		if p.FaceDetector == nil {
			return nil, errors.Wrap(ErrInvalidArgument, "face detection is enabled but no classifier was provided")
		}
		faces := p.detectFaces(img)
		if p.Log != nil {
			p.Log.Printf("protecting %d face regions", len(faces))
		}
		for _, face := range faces {
			c.protectRect(face)
		}
	}
	return c.energy, nil
}

// gradientEnergy computes the default energy map. Rows are independent,
// so they are filled in parallel chunks.
func (c *Carver) gradientEnergy(img *Image) {
	parallelRows(c.Height, c.Width*c.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := y * img.Stride
			for x := 0; x < c.Width; x++ {
				px := row + x*4
				var dist int
				if x > 0 {
					dist += colorDistSq(img.Pix[px-4:px], img.Pix[px:px+4])
				}
				if x+1 < c.Width {
					dist += colorDistSq(img.Pix[px+4:px+8], img.Pix[px:px+4])
				}
				c.set(x, y, math.Sqrt(float64(dist)))
			}
		}
	})
}

// colorDistSq returns the squared euclidean distance between the RGB
// channels of two pixels. Alpha is ignored.
func colorDistSq(a, b []uint8) int {
	dr := int(a[0]) - int(b[0])
	dg := int(a[1]) - int(b[1])
	db := int(a[2]) - int(b[2])
	return dr*dr + dg*dg + db*db
}

// FindLowestEnergySeam returns the top to bottom path with the lowest
// total energy.
//
// The cumulative minimum energy of every pixel is computed row by row:
// the pixel's own energy plus the smallest cumulative energy among the
// up to three adjacent pixels of the row above. The column achieving
// that minimum is recorded, so the cheapest path can be walked back from
// the bottom row without re-deriving it. Ties always resolve to the
// leftmost column, which keeps the output deterministic.
func (c *Carver) FindLowestEnergySeam() Seam {
	if c.Width == 0 || c.Height == 0 {
		return make(Seam, 0)
	}

	// Cumulative energies and predecessor columns live in flat row-major
	// tables for the lifetime of this single pass.
	cum := make([]float64, c.Width*c.Height)
	prev := make([]int, c.Width*c.Height)
	copy(cum[:c.Width], c.energy[:c.Width])

	for y := 1; y < c.Height; y++ {
		above := (y - 1) * c.Width
		for x := 0; x < c.Width; x++ {
			best := utils.Max(x-1, 0)
			hi := utils.Min(x+1, c.Width-1)
			for cand := best + 1; cand <= hi; cand++ {
				if cum[above+cand] < cum[above+best] {
					best = cand
				}
			}
			idx := x + y*c.Width
			cum[idx] = c.energy[idx] + cum[above+best]
			prev[idx] = best
		}
	}

	// The cheapest seam ends at the bottom row minimum, leftmost on ties.
	px := 0
	bottom := (c.Height - 1) * c.Width
	for x := 1; x < c.Width; x++ {
		if cum[bottom+x] < cum[bottom+px] {
			px = x
		}
	}

	seam := make(Seam, 0, c.Height)
	for y := c.Height - 1; y >= 0; y-- {
		seam = append(seam, Point{X: px, Y: y})
		if y > 0 {
			px = prev[px+y*c.Width]
		}
	}

	// Backtracking walks bottom up; hand the seam out in row order.
	for i, j := 0, len(seam)-1; i < j; i, j = i+1, j-1 {
		seam[i], seam[j] = seam[j], seam[i]
	}
	return seam
}

// RemoveSeam deletes the seam pixels from img by shifting the remainder
// of every row one position to the left. The freed trailing column stays
// in the backing array but is no longer part of the image; the caller is
// expected to decrement the logical width once this returns.
func (c *Carver) RemoveSeam(img *Image, seam Seam) error {
	if err := c.checkImage(img); err != nil {
		return err
	}
	if len(seam) != c.Height {
		return errors.Wrapf(ErrInvalidArgument, "seam length %d does not match the image height %d", len(seam), c.Height)
	}
	for y, s := range seam {
		if s.Y != y || s.X < 0 || s.X >= c.Width {
			return errors.Wrapf(ErrInvalidArgument, "seam point %d out of bounds: (%d, %d)", y, s.X, s.Y)
		}
	}

	for y, s := range seam {
		row := y * img.Stride
		// Pixels move as whole 4 byte units, so the channels of
		// neighboring pixels never get mixed up.
		copy(img.Pix[row+s.X*4:row+(c.Width-1)*4], img.Pix[row+(s.X+1)*4:row+c.Width*4])
	}
	return nil
}

// applyMask adjusts the energy of every marked mask pixel: protected
// pixels are penalized, removal pixels drop to zero energy.
func (c *Carver) applyMask(mask *Image, protect bool) error {
	if err := c.checkImage(mask); err != nil {
		return err
	}
	boost := c.protectedEnergy()

	for y := 0; y < c.Height; y++ {
		row := y * mask.Stride
		for x := 0; x < c.Width; x++ {
			if mask.Pix[row+x*4] < maskOn {
				continue
			}
			if protect {
				c.set(x, y, c.at(x, y)+boost)
			} else {
				c.set(x, y, 0)
			}
		}
	}
	return nil
}

// protectRect penalizes the energy of every pixel inside r. Parts of r
// outside the image area are dropped.
func (c *Carver) protectRect(r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, c.Width, c.Height))
	boost := c.protectedEnergy()

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.set(x, y, c.at(x, y)+boost)
		}
	}
}

// protectedEnergy is the penalty stacked on protected pixels. It exceeds
// the total energy of any unprotected seam, so a protected pixel is only
// ever carved when every possible path crosses a protected zone.
func (c *Carver) protectedEnergy() float64 {
	return maxPixelEnergy * float64(c.Height+1)
}

// checkImage verifies that the buffer has the dimensions this Carver was
// built for.
func (c *Carver) checkImage(img *Image) error {
	if img == nil {
		return errors.Wrap(ErrInvalidArgument, "nil image")
	}
	if img.Width != c.Width || img.Height != c.Height {
		return errors.Wrapf(ErrInvalidArgument, "image size %dx%d does not match the carver size %dx%d",
			img.Width, img.Height, c.Width, c.Height)
	}
	return nil
}
