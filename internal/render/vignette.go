package render

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// DefaultVignetteStrength is the standard edge-darkening factor.
const DefaultVignetteStrength = 0.55

const (
	vignetteRings      = 40
	vignetteRingWidth  = 6
	vignetteBlurRadius = 18
)

// Vignette darkens the image toward its edges. The radial mask is built
// from concentric ring strokes whose intensity grows quadratically with
// the radius fraction, then blurred into a continuous falloff and used
// as the per-pixel mix toward black.
func Vignette(img *image.NRGBA, strength float64) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	cx, cy := float64(w)/2, float64(h)/2
	maxR := math.Hypot(cx, cy)

	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetLineWidth(vignetteRingWidth)
	for i := 0; i < vignetteRings; i++ {
		t := float64(i) / float64(vignetteRings-1)
		level := int(255 * t * t * strength)
		dc.SetRGB255(level, level, level)
		dc.DrawCircle(cx, cy, maxR*t)
		dc.Stroke()
	}

	mask := imaging.Blur(dc.Image(), vignetteBlurRadius)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		si := y * img.Stride
		mi := y * mask.Stride
		oi := y * out.Stride
		for x := 0; x < w; x++ {
			m := float64(mask.Pix[mi+x*4]) / 255
			out.Pix[oi+x*4] = toBlack(img.Pix[si+x*4], m)
			out.Pix[oi+x*4+1] = toBlack(img.Pix[si+x*4+1], m)
			out.Pix[oi+x*4+2] = toBlack(img.Pix[si+x*4+2], m)
			out.Pix[oi+x*4+3] = 0xff
		}
	}
	return out
}

// toBlack moves one channel toward black by fraction m.
func toBlack(v uint8, m float64) uint8 {
	return uint8(math.Round(float64(v) * (1 - m)))
}
