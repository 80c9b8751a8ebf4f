package seamcarver

import (
	"bytes"
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, path string, img image.Image) {
	t.Helper()
	require.NoError(t, imaging.Save(img, path))
}

func TestExecute_SingleFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dst := filepath.Join(dir, "out.png")
	writeImage(t, src, newImage6x5())

	var log bytes.Buffer
	p := &Processor{NewWidth: 4, NewHeight: 3}
	require.NoError(t, p.Execute(&Ops{Src: src, Dst: dst, PipeName: "-", Log: &log}))

	res, err := imaging.Open(dst)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), res.Bounds())
	assert.Contains(t, log.String(), "out.png")
}

func TestExecute_UnsupportedDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	writeImage(t, src, newImage6x5())

	p := &Processor{NewWidth: 4}
	err := p.Execute(&Ops{Src: src, Dst: filepath.Join(dir, "out.tiff"), Log: new(bytes.Buffer)})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExecute_MissingSource(t *testing.T) {
	p := &Processor{NewWidth: 4}
	err := p.Execute(&Ops{
		Src: filepath.Join(t.TempDir(), "missing.png"),
		Dst: "out.png",
		Log: new(bytes.Buffer),
	})
	assert.Error(t, err)
}

func TestExecute_FailedResizeRemovesOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dst := filepath.Join(dir, "out.png")
	writeImage(t, src, newImage6x5())

	var log bytes.Buffer
	p := &Processor{NewWidth: 12}
	err := p.Execute(&Ops{Src: src, Dst: dst, Log: &log})
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.NoFileExists(t, dst)
	assert.Contains(t, log.String(), "Error resizing the image")
}

func TestExecute_Directory(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "resized")
	rng := rand.New(rand.NewSource(9))

	names := []string{"a.png", "b.jpg", "c.bmp", "d.gif"}
	for _, name := range names {
		writeImage(t, filepath.Join(src, name), newRandomImage(rng, 8, 6))
	}
	// Files without an image extension are skipped.
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte("skip"), 0644))

	p := &Processor{NewWidth: 5, NewHeight: 5}
	require.NoError(t, p.Execute(&Ops{Src: src, Dst: dst, Workers: 2, Log: new(bytes.Buffer)}))

	// GIF sources cannot be encoded back, they are saved as PNG.
	for _, name := range []string{"a.png", "b.jpg", "c.bmp", "d.png"} {
		res, err := imaging.Open(filepath.Join(dst, name))
		require.NoErrorf(t, err, "opening %s", name)
		assert.Equal(t, image.Rect(0, 0, 5, 5), res.Bounds())
	}
	assert.NoFileExists(t, filepath.Join(dst, "notes.txt"))
}

func TestExecute_DirectoryCollectsErrors(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	rng := rand.New(rand.NewSource(10))

	writeImage(t, filepath.Join(src, "small.png"), newRandomImage(rng, 4, 4))
	writeImage(t, filepath.Join(src, "large.png"), newRandomImage(rng, 9, 9))

	p := &Processor{NewWidth: 6}
	err := p.Execute(&Ops{Src: src, Dst: dst, Workers: 1, Log: new(bytes.Buffer)})
	require.ErrorIs(t, err, ErrInvalidSize)
	assert.Contains(t, err.Error(), "small.png")

	res, err := imaging.Open(filepath.Join(dst, "large.png"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 9), res.Bounds())
}

func TestIsValidExtension(t *testing.T) {
	assert.True(t, isValidExtension(".png", dstExtensions))
	assert.True(t, isValidExtension(".webp", srcExtensions))
	assert.False(t, isValidExtension(".webp", dstExtensions))
	assert.False(t, isValidExtension(".PNG", dstExtensions))
}
