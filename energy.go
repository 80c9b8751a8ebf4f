package seamcarver

// BorderEnergy is the energy assigned to every pixel of the outermost rows
// and columns (3*255²). Border pixels are never cheaper than interior ones.
const BorderEnergy = 195075

// energyField owns the pixel matrix and the energy matrix derived from it.
// Both are stored row-major and always have the same dimensions.
type energyField struct {
	width  int
	height int
	pixels []rgb
	energy []float64
}

func newEnergyField(pixels []rgb, width, height int) *energyField {
	ef := &energyField{
		width:  width,
		height: height,
		pixels: pixels,
	}
	ef.recompute()
	return ef
}

// pixel returns the color at column x and row y.
func (ef *energyField) pixel(x, y int) rgb {
	return ef.pixels[x+y*ef.width]
}

// at returns the cached energy at column x and row y.
func (ef *energyField) at(x, y int) float64 {
	return ef.energy[x+y*ef.width]
}

func (ef *energyField) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < ef.width && y < ef.height
}

func (ef *energyField) isBorder(x, y int) bool {
	return x == 0 || y == 0 || x == ef.width-1 || y == ef.height-1
}

// recompute rebuilds the whole energy matrix from the current pixels.
// It has to be called after every change of the pixel matrix.
func (ef *energyField) recompute() {
	ef.energy = make([]float64, ef.width*ef.height)

	for y := 0; y < ef.height; y++ {
		for x := 0; x < ef.width; x++ {
			ef.energy[x+y*ef.width] = ef.compute(x, y)
		}
	}
}

// compute returns the squared gradient magnitude of an interior pixel,
// using the central differences of its 4-neighbourhood.
func (ef *energyField) compute(x, y int) float64 {
	if ef.isBorder(x, y) {
		return BorderEnergy
	}
	left, right := ef.pixel(x-1, y), ef.pixel(x+1, y)
	above, below := ef.pixel(x, y-1), ef.pixel(x, y+1)

	return gradient(left, right) + gradient(below, above)
}

// gradient returns the sum of the squared channel differences b - a.
func gradient(a, b rgb) float64 {
	dr := int(b.r) - int(a.r)
	dg := int(b.g) - int(a.g)
	db := int(b.b) - int(a.b)

	return float64(dr*dr + dg*dg + db*db)
}

// layout returns, for the given seam orientation, the number of lines a seam
// crosses (its length) and the number of candidate positions on every line.
func (ef *energyField) layout(o Orientation) (lines, span int) {
	if o == Horizontal {
		return ef.width, ef.height
	}
	return ef.height, ef.width
}

// lineEnergy returns the energy of the pixel at position p of line i.
// For vertical seams a line is a row, for horizontal seams a column.
func (ef *energyField) lineEnergy(o Orientation, i, p int) float64 {
	if o == Horizontal {
		return ef.at(i, p)
	}
	return ef.at(p, i)
}
