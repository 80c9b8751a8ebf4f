package seamcarver

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/seamcarver/utils"
)

// Resizer is implemented by types able to rescale an image.
type Resizer interface {
	Resize(image.Image) (image.Image, error)
}

var _ Resizer = (*Processor)(nil)

// Processor options
type Processor struct {
	// NewWidth and NewHeight are the requested output dimensions in pixels.
	// Zero keeps the original dimension. When Percentage is set they hold the
	// percentage of the width and height to remove instead.
	NewWidth   int
	NewHeight  int
	Percentage bool
	// Square reduces the image to a square based on its shortest edge.
	Square bool
	// Scale first downsizes the image proportionally, then carves only the
	// remaining pixels along the axis which needs it.
	Scale    bool
	Strategy Strategy
}

// Resize is a helper calling the Resize method of any Resizer.
func Resize(r Resizer, img image.Image) (image.Image, error) {
	return r.Resize(img)
}

// Resize removes seams until the image reaches the requested size.
// If the image is resized on both axes the vertical and horizontal seams
// are removed intermittently, so that they are spread evenly over the image.
func (p *Processor) Resize(img image.Image) (image.Image, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	newWidth, newHeight, err := p.targetSize(width, height)
	if err != nil {
		return nil, err
	}

	if p.Scale && newWidth < width && newHeight < height {
		img = p.scale(img, newWidth, newHeight)
	}

	c, err := NewCarver(img, WithStrategy(p.Strategy))
	if err != nil {
		return nil, err
	}

	for c.Width() > newWidth || c.Height() > newHeight {
		if c.Width() > newWidth {
			if err := c.RemoveVerticalSeam(c.FindVerticalSeam()); err != nil {
				return nil, err
			}
		}
		if c.Height() > newHeight {
			if err := c.RemoveHorizontalSeam(c.FindHorizontalSeam()); err != nil {
				return nil, err
			}
		}
	}
	return c.Picture(), nil
}

// targetSize computes the output dimensions and checks that they can be
// reached by removing seams only.
func (p *Processor) targetSize(width, height int) (int, int, error) {
	if width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("%w: got %dx%d", ErrEmptyImage, width, height)
	}
	newWidth, newHeight := width, height

	switch {
	case p.Percentage:
		if p.NewWidth < 0 || p.NewWidth >= 100 || p.NewHeight < 0 || p.NewHeight >= 100 {
			return 0, 0, fmt.Errorf("%w: percentage must be within [0, 100)", ErrInvalidSize)
		}
		newWidth = width - int(float64(width)*float64(p.NewWidth)/100)
		newHeight = height - int(float64(height)*float64(p.NewHeight)/100)
	default:
		if p.NewWidth > 0 {
			newWidth = p.NewWidth
		}
		if p.NewHeight > 0 {
			newHeight = p.NewHeight
		}
	}

	if p.Square {
		side := utils.Min(newWidth, newHeight)
		newWidth, newHeight = side, side
	}

	if newWidth > width || newHeight > height {
		return 0, 0, fmt.Errorf("%w: %dx%d is larger than %dx%d, enlarging is not supported",
			ErrInvalidSize, newWidth, newHeight, width, height)
	}
	if newWidth < 1 || newHeight < 1 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidSize, newWidth, newHeight)
	}
	// A seam needs at least two pixels to be removable.
	if (newWidth < width && newHeight < 2) || (newHeight < height && newWidth < 2) {
		return 0, 0, fmt.Errorf("%w: cannot carve a %dx%d image down to %dx%d",
			ErrInvalidSize, width, height, newWidth, newHeight)
	}
	return newWidth, newHeight, nil
}

// scale downsizes the image proportionally by the larger of the two ratios,
// so the result still covers the requested size on both axes.
// Example: input 5000x2500, target 1920x1080: scaled to 2160x1080.
func (p *Processor) scale(img image.Image, newWidth, newHeight int) image.Image {
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	ratio := math.Max(float64(newWidth)/w, float64(newHeight)/h)

	sw := utils.Max(int(math.Ceil(w*ratio)), newWidth)
	sh := utils.Max(int(math.Ceil(h*ratio)), newHeight)

	return imaging.Resize(img, sw, sh, imaging.Lanczos)
}
