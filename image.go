package seamcarver

import (
	"image"

	"github.com/disintegration/imaging"
)

// rgb is a single pixel of the carver's own pixel matrix. Alpha is dropped,
// the energy model only looks at the color channels.
type rgb struct {
	r, g, b uint8
}

// imgToPixels copies any image type into a row-major pixel slice.
// The source image is never referenced afterwards.
func imgToPixels(img image.Image) ([]rgb, int, int) {
	// imaging.Clone always returns a fresh *image.NRGBA with min-point at (0, 0).
	src := imaging.Clone(img)
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	pixels := make([]rgb, width*height)

	for y := 0; y < height; y++ {
		si := src.PixOffset(0, y)
		for x := 0; x < width; x++ {
			pixels[x+y*width] = rgb{
				r: src.Pix[si+0],
				g: src.Pix[si+1],
				b: src.Pix[si+2],
			}
			si += 4
		}
	}
	return pixels, width, height
}

// pixelsToImg converts a pixel slice back to a fully opaque *image.NRGBA.
func pixelsToImg(pixels []rgb, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		di := dst.PixOffset(0, y)
		for x := 0; x < width; x++ {
			px := pixels[x+y*width]
			dst.Pix[di+0] = px.r
			dst.Pix[di+1] = px.g
			dst.Pix[di+2] = px.b
			dst.Pix[di+3] = 0xff
			di += 4
		}
	}
	return dst
}
