package render

import (
	"image"

	"github.com/AnyUserName/coverart-cli/internal/palette"
)

// Gradient paints a vertical linear gradient from c1 (top row) to c2
// (bottom row). A single-row image is filled with c1: t is defined as 0
// when h == 1 to avoid dividing by zero.
func Gradient(w, h int, c1, c2 palette.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		r := lerp8(c1.R, c2.R, t)
		g := lerp8(c1.G, c2.G, t)
		b := lerp8(c1.B, c2.B, t)

		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < len(row); x += 4 {
			row[x] = r
			row[x+1] = g
			row[x+2] = b
			row[x+3] = 0xff
		}
	}
	return img
}
