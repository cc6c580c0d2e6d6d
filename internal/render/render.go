// Package render implements the cover generation pipeline. A cover is
// built in four strictly ordered stages — gradient, shape overlay,
// grain, vignette — each a pure function of the previous raster and
// seed-derived values. Identical inputs always produce identical pixel
// buffers.
package render

import (
	"image"
	"math"
	"math/rand"

	"github.com/AnyUserName/coverart-cli/internal/palette"
	"github.com/AnyUserName/coverart-cli/internal/seed"
)

// Default canvas dimensions.
const (
	DefaultWidth  = 1024
	DefaultHeight = 576
)

// Options control a single cover render.
type Options struct {
	Width  int
	Height int
	// VignetteStrength scales edge darkening. Zero selects the default.
	VignetteStrength float64
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.VignetteStrength == 0 {
		o.VignetteStrength = DefaultVignetteStrength
	}
	return o
}

// Cover runs the full pipeline for slug. The result is fully opaque, so
// PNG encoding produces a truecolor image without an alpha channel.
func Cover(slug string, opts Options) *image.NRGBA {
	opts = opts.withDefaults()
	s := seed.FromSlug(slug)
	sel := palette.Pick(s)

	img := Gradient(opts.Width, opts.Height, sel.C1, sel.C2)
	img = Shapes(img, s, sel.Accent)
	img = Grain(img, s)
	img = Vignette(img, opts.VignetteStrength)
	return img
}

// uniform draws a float in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// lerp8 interpolates one channel, rounded to nearest. Inputs are in
// range, so the result needs no clamping.
func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a)*(1-t) + float64(b)*t))
}
