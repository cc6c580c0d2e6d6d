package render

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/AnyUserName/coverart-cli/internal/palette"
	"github.com/AnyUserName/coverart-cli/internal/seed"
)

const (
	circleCount = 22
	lineCount   = 16

	circleRadiusMin = 80
	circleRadiusMax = 220

	shapeBlurRadius = 14
)

// Shapes composites a blurred layer of translucent circles and line
// segments over base. A single generator seeded from s drives every
// draw in a fixed order. Circle centers range over [-10%, 110%] of the
// canvas, so shapes may bleed past the edges — intentional, never
// clamped or skipped.
func Shapes(base *image.NRGBA, s uint32, accent palette.Color) *image.NRGBA {
	b := base.Bounds()
	w, h := b.Dx(), b.Dy()
	rng := seed.NewRand(s)

	dc := gg.NewContext(w, h)

	for i := 0; i < circleCount; i++ {
		x := uniform(rng, -0.1, 1.1) * float64(w)
		y := uniform(rng, -0.1, 1.1) * float64(h)
		r := uniform(rng, circleRadiusMin, circleRadiusMax)
		fill := palette.White
		if rng.Float64() < 0.6 {
			fill = accent
		}
		alpha := int(uniform(rng, 18, 55))

		dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), alpha)
		dc.DrawCircle(x, y, r)
		dc.Fill()
	}

	for i := 0; i < lineCount; i++ {
		x1 := uniform(rng, 0, float64(w))
		y1 := uniform(rng, 0, float64(h))
		x2 := uniform(rng, 0, float64(w))
		y2 := uniform(rng, 0, float64(h))
		width := int(uniform(rng, 2, 6))
		alpha := int(uniform(rng, 10, 26))

		dc.SetRGBA255(int(accent.R), int(accent.G), int(accent.B), alpha)
		dc.SetLineWidth(float64(width))
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	layer := imaging.Blur(dc.Image(), shapeBlurRadius)
	return imaging.Overlay(base, layer, image.Pt(0, 0), 1.0)
}
