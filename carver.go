package seamcarver

import (
	"fmt"
	"image"
	"strings"
)

// Seam holds one pixel offset per image line: the column of the removed pixel
// on every row for a vertical seam, the row of the removed pixel on every
// column for a horizontal seam.
type Seam []int

// Strategy selects how the lowest energy seam is searched.
type Strategy int

const (
	// GraphStrategy builds the seam graph and runs a shortest path over it.
	GraphStrategy Strategy = iota
	// DynamicStrategy computes the cumulative seam energy line by line
	// without building the graph. Both strategies find seams of equal energy.
	DynamicStrategy
)

func (s Strategy) String() string {
	switch s {
	case GraphStrategy:
		return "graph"
	case DynamicStrategy:
		return "dp"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy converts a strategy name ("graph" or "dp") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "graph":
		return GraphStrategy, nil
	case "dp", "dynamic":
		return DynamicStrategy, nil
	}
	return GraphStrategy, fmt.Errorf("unknown seam search strategy %q", name)
}

// Option configures a Carver.
type Option func(*Carver)

// WithStrategy sets the seam search strategy. The default is GraphStrategy.
func WithStrategy(s Strategy) Option {
	return func(c *Carver) {
		c.strategy = s
	}
}

// Carver removes the lowest energy seams of an image, one at a time.
//
// A Carver owns a private copy of the image pixels and the energy computed
// from them. It is not safe for concurrent use.
type Carver struct {
	field    *energyField
	strategy Strategy
}

// NewCarver creates a Carver from a copy of img.
func NewCarver(img image.Image, opts ...Option) (*Carver, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyImage, b.Dx(), b.Dy())
	}
	pixels, width, height := imgToPixels(img)

	c := &Carver{
		field:    newEnergyField(pixels, width, height),
		strategy: GraphStrategy,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Picture returns a copy of the current image.
func (c *Carver) Picture() *image.NRGBA {
	return pixelsToImg(c.field.pixels, c.field.width, c.field.height)
}

// Width returns the width of the current image.
func (c *Carver) Width() int { return c.field.width }

// Height returns the height of the current image.
func (c *Carver) Height() int { return c.field.height }

// Energy returns the energy of the pixel at column x and row y.
func (c *Carver) Energy(x, y int) (float64, error) {
	if !c.field.inBounds(x, y) {
		return 0, fmt.Errorf("%w: x = %d; y = %d on a %dx%d image",
			ErrOutOfRange, x, y, c.field.width, c.field.height)
	}
	return c.field.at(x, y), nil
}

// EnergyMatrix returns a copy of the energy of every pixel, indexed [y][x].
func (c *Carver) EnergyMatrix() [][]float64 {
	ef := c.field
	m := make([][]float64, ef.height)
	for y := range m {
		m[y] = make([]float64, ef.width)
		copy(m[y], ef.energy[y*ef.width:(y+1)*ef.width])
	}
	return m
}

// FindVerticalSeam returns the lowest energy top-to-bottom seam,
// one column index per row. It returns nil if no seam exists.
func (c *Carver) FindVerticalSeam() Seam {
	return c.findSeam(Vertical)
}

// FindHorizontalSeam returns the lowest energy left-to-right seam,
// one row index per column. It returns nil if no seam exists.
func (c *Carver) FindHorizontalSeam() Seam {
	return c.findSeam(Horizontal)
}

func (c *Carver) findSeam(o Orientation) Seam {
	if c.strategy == DynamicStrategy {
		return solveDynamic(c.field, o)
	}
	return solve(buildSeamGraph(c.field, o))
}

// RemoveVerticalSeam removes one pixel from every row, reducing the width by one.
// Seams obtained before the call must not be reused afterwards.
func (c *Carver) RemoveVerticalSeam(seam Seam) error {
	return c.field.removeSeam(Vertical, seam)
}

// RemoveHorizontalSeam removes one pixel from every column, reducing the height by one.
// Seams obtained before the call must not be reused afterwards.
func (c *Carver) RemoveHorizontalSeam(seam Seam) error {
	return c.field.removeSeam(Horizontal, seam)
}

// SeamEnergy returns the total energy of the pixels on the seam.
func (c *Carver) SeamEnergy(o Orientation, seam Seam) (float64, error) {
	lines, span := c.field.layout(o)
	if len(seam) != lines {
		return 0, fmt.Errorf("%w: %s seam has %d entries, want %d",
			ErrSeamLength, o, len(seam), lines)
	}
	if err := checkSeamPath(seam, span); err != nil {
		return 0, err
	}

	var total float64
	for i, p := range seam {
		total += c.field.lineEnergy(o, i, p)
	}
	return total, nil
}
