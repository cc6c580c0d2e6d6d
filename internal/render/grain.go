package render

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/AnyUserName/coverart-cli/internal/seed"
)

const (
	grainBlurRadius = 1.2
	grainLevel      = 0.18
)

// Grain blends a softened noise texture into img. Noise intensities are
// drawn row-major from the grain generator, blurred slightly, darkened
// toward black and mixed in at 18%.
func Grain(img *image.NRGBA, s uint32) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rng := seed.NewGrainRand(s)

	noise := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := noise.Pix[y*noise.Stride : y*noise.Stride+w]
		for x := 0; x < w; x++ {
			row[x] = uint8(rng.Intn(256))
		}
	}

	soft := imaging.Blur(noise, grainBlurRadius)

	// Scale the gray channel and replicate it across RGB.
	for i := 0; i < len(soft.Pix); i += 4 {
		v := uint8(float64(soft.Pix[i]) * grainLevel)
		soft.Pix[i] = v
		soft.Pix[i+1] = v
		soft.Pix[i+2] = v
		soft.Pix[i+3] = 0xff
	}

	return imaging.Overlay(img, soft, image.Pt(0, 0), grainLevel)
}
