package seamcarver

import (
	"fmt"

	"github.com/esimov/seamcarver/utils"
)

// validateSeam checks a seam against the current image before removal.
// The checks run in a fixed order so that each failure maps to one error.
func (ef *energyField) validateSeam(o Orientation, seam Seam) error {
	if seam == nil {
		return ErrNilSeam
	}
	lines, span := ef.layout(o)
	if len(seam) != lines || len(seam) <= 1 {
		return fmt.Errorf("%w: %s seam has %d entries, want %d",
			ErrSeamLength, o, len(seam), lines)
	}
	if span <= 1 {
		return fmt.Errorf("%w: %s seam on a %dx%d image",
			ErrImageTooSmall, o, ef.width, ef.height)
	}
	return checkSeamPath(seam, span)
}

// checkSeamPath verifies that every entry is within [0, span) and that
// consecutive entries are at most one position apart.
func checkSeamPath(seam Seam, span int) error {
	for i, p := range seam {
		if p < 0 || p >= span {
			return fmt.Errorf("%w: entry %d is %d, outside [0, %d)", ErrInvalidSeam, i, p, span)
		}
		if i > 0 && utils.Abs(p-seam[i-1]) > 1 {
			return fmt.Errorf("%w: entries %d and %d are %d pixels apart",
				ErrInvalidSeam, i-1, i, utils.Abs(p-seam[i-1]))
		}
	}
	return nil
}

// removeSeam validates the seam, removes it and recomputes the energy.
// The field is left untouched when validation fails.
func (ef *energyField) removeSeam(o Orientation, seam Seam) error {
	if err := ef.validateSeam(o, seam); err != nil {
		return err
	}
	if o == Horizontal {
		ef.removeHorizontal(seam)
	} else {
		ef.removeVertical(seam)
	}
	ef.recompute()

	return nil
}

// removeVertical drops pixel seam[y] from every row y.
func (ef *energyField) removeVertical(seam Seam) {
	width := ef.width - 1
	pixels := make([]rgb, width*ef.height)

	for y := 0; y < ef.height; y++ {
		s := seam[y]
		src := ef.pixels[y*ef.width : (y+1)*ef.width]
		dst := pixels[y*width : (y+1)*width]
		copy(dst, src[:s])
		copy(dst[s:], src[s+1:])
	}
	ef.pixels = pixels
	ef.width = width
}

// removeHorizontal drops pixel seam[x] from every column x.
func (ef *energyField) removeHorizontal(seam Seam) {
	height := ef.height - 1
	pixels := make([]rgb, ef.width*height)

	for x := 0; x < ef.width; x++ {
		s := seam[x]
		for y := 0; y < height; y++ {
			sy := y
			if y >= s {
				sy++
			}
			pixels[x+y*ef.width] = ef.pixels[x+sy*ef.width]
		}
	}
	ef.pixels = pixels
	ef.height = height
}
