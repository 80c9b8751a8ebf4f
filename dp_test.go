package seamcarver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamic_6x5Seams(t *testing.T) {
	c := newTestCarver(t, newImage6x5(), WithStrategy(DynamicStrategy))

	assert.Equal(t, Seam{2, 3, 3, 3, 2}, c.FindVerticalSeam())
	assert.Equal(t, Seam{2, 3, 3, 3, 2, 1}, c.FindHorizontalSeam())
}

func TestDynamic_MatchesGraphEnergy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < 30; n++ {
		width, height := 1+rng.Intn(15), 1+rng.Intn(15)
		img := newRandomImage(rng, width, height)

		graph := newTestCarver(t, img)
		dynamic := newTestCarver(t, img, WithStrategy(DynamicStrategy))

		for _, o := range []Orientation{Vertical, Horizontal} {
			gs, ds := graph.findSeam(o), dynamic.findSeam(o)
			lines, span := graph.field.layout(o)
			assertValidSeam(t, ds, lines, span)

			ge, err := graph.SeamEnergy(o, gs)
			require.NoError(t, err)
			de, err := dynamic.SeamEnergy(o, ds)
			require.NoError(t, err)
			assert.Equalf(t, ge, de, "%s seam of a %dx%d image", o, width, height)
		}
	}
}

func TestDynamic_RemovalSequence(t *testing.T) {
	graph := newTestCarver(t, newImage6x5())
	dynamic := newTestCarver(t, newImage6x5(), WithStrategy(DynamicStrategy))

	for graph.Width() > 3 {
		gs, ds := graph.FindVerticalSeam(), dynamic.FindVerticalSeam()
		assert.Equal(t, gs, ds)
		require.NoError(t, graph.RemoveVerticalSeam(gs))
		require.NoError(t, dynamic.RemoveVerticalSeam(ds))
	}
	assert.Equal(t, graph.Picture(), dynamic.Picture())
}
