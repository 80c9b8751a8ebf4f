package seamcarver

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// pixels6x5 is a 6x5 image, indexed [y][x], whose lowest energy vertical
// seam is {2 3 3 3 2} and horizontal seam {2 3 3 3 2 1}.
var pixels6x5 = [][]color.NRGBA{
	{{164, 220, 4, 255}, {153, 144, 243, 255}, {129, 220, 101, 255}, {226, 66, 149, 255}, {177, 63, 132, 255}, {130, 192, 46, 255}},
	{{124, 144, 33, 255}, {94, 35, 37, 255}, {53, 193, 44, 255}, {158, 245, 91, 255}, {162, 114, 253, 255}, {106, 90, 176, 255}},
	{{238, 142, 98, 255}, {21, 236, 80, 255}, {50, 72, 247, 255}, {239, 90, 41, 255}, {232, 252, 216, 255}, {104, 189, 83, 255}},
	{{18, 173, 21, 255}, {169, 65, 243, 255}, {51, 157, 222, 255}, {111, 175, 134, 255}, {8, 60, 114, 255}, {47, 162, 116, 255}},
	{{125, 25, 163, 255}, {160, 66, 68, 255}, {19, 52, 83, 255}, {204, 20, 170, 255}, {59, 109, 30, 255}, {11, 194, 32, 255}},
}

// energy6x5 is the energy of pixels6x5, indexed [y][x].
var energy6x5 = [][]float64{
	{195075, 195075, 195075, 195075, 195075, 195075},
	{195075, 60020, 100573, 74212, 79756, 195075},
	{195075, 111406, 103345, 75443, 75743, 195075},
	{195075, 90111, 55602, 45688, 89563, 195075},
	{195075, 195075, 195075, 195075, 195075, 195075},
}

func newImage(rows [][]color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, c := range row {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func newImage6x5() *image.NRGBA {
	return newImage(pixels6x5)
}

// newImage3x4 builds the 3 columns by 4 rows picture, set column by column.
func newImage3x4() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 4))
	img.SetNRGBA(0, 0, color.NRGBA{255, 101, 51, 255})
	img.SetNRGBA(0, 1, color.NRGBA{255, 153, 51, 255})
	img.SetNRGBA(0, 2, color.NRGBA{255, 203, 51, 255})
	img.SetNRGBA(0, 3, color.NRGBA{255, 255, 51, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 101, 153, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 153, 153, 255})
	img.SetNRGBA(1, 2, color.NRGBA{255, 204, 153, 255})
	img.SetNRGBA(1, 3, color.NRGBA{255, 255, 153, 255})
	img.SetNRGBA(2, 0, color.NRGBA{255, 101, 255, 255})
	img.SetNRGBA(2, 1, color.NRGBA{255, 153, 255, 255})
	img.SetNRGBA(2, 2, color.NRGBA{255, 205, 255, 255})
	img.SetNRGBA(2, 3, color.NRGBA{255, 255, 255, 255})
	return img
}

// newRandomImage fills a width x height image with random opaque colors.
func newRandomImage(rng *rand.Rand, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = uint8(rng.Intn(256))
		img.Pix[i+1] = uint8(rng.Intn(256))
		img.Pix[i+2] = uint8(rng.Intn(256))
		img.Pix[i+3] = 0xff
	}
	return img
}

func newTestCarver(t testing.TB, img image.Image, opts ...Option) *Carver {
	t.Helper()
	c, err := NewCarver(img, opts...)
	require.NoError(t, err)
	return c
}

// assertBorderEnergy checks that every border pixel carries BorderEnergy.
func assertBorderEnergy(t *testing.T, c *Carver) {
	t.Helper()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if x != 0 && y != 0 && x != c.Width()-1 && y != c.Height()-1 {
				continue
			}
			e, err := c.Energy(x, y)
			require.NoError(t, err)
			require.Equalf(t, float64(BorderEnergy), e, "border pixel (%d, %d)", x, y)
		}
	}
}

// assertValidSeam checks the length, range and connectivity of a seam.
func assertValidSeam(t *testing.T, seam Seam, length, span int) {
	t.Helper()
	require.Len(t, seam, length)
	for i, p := range seam {
		require.GreaterOrEqual(t, p, 0)
		require.Less(t, p, span)
		if i > 0 {
			d := p - seam[i-1]
			require.LessOrEqualf(t, d*d, 1, "entries %d and %d are %d apart", i-1, i, d)
		}
	}
}
