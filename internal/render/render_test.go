package render

import (
	"bytes"
	"image"
	"testing"

	"github.com/AnyUserName/coverart-cli/internal/seed"
)

func pixEqual(a, b *image.NRGBA) bool {
	return a.Bounds() == b.Bounds() && bytes.Equal(a.Pix, b.Pix)
}

func TestCover_Deterministic(t *testing.T) {
	opts := Options{Width: 100, Height: 100}
	a := Cover("test-123", opts)
	b := Cover("test-123", opts)
	if !pixEqual(a, b) {
		t.Error("identical slug and options produced different pixels")
	}
}

func TestCover_DifferentSlugsDiffer(t *testing.T) {
	opts := Options{Width: 100, Height: 100}
	a := Cover("test-123", opts)
	b := Cover("test-124", opts)
	if pixEqual(a, b) {
		t.Error("different slugs produced identical pixels")
	}
}

func TestCover_Dimensions(t *testing.T) {
	cases := []struct{ w, h int }{{200, 100}, {1, 1}, {64, 36}}
	for _, c := range cases {
		img := Cover("dim-check", Options{Width: c.w, Height: c.h})
		b := img.Bounds()
		if b.Dx() != c.w || b.Dy() != c.h {
			t.Errorf("Cover %dx%d: bounds %dx%d", c.w, c.h, b.Dx(), b.Dy())
		}
	}
}

func TestCover_Defaults(t *testing.T) {
	img := Cover("defaults", Options{})
	b := img.Bounds()
	if b.Dx() != DefaultWidth || b.Dy() != DefaultHeight {
		t.Errorf("default bounds: %dx%d, want %dx%d", b.Dx(), b.Dy(), DefaultWidth, DefaultHeight)
	}
}

func TestCover_FullyOpaque(t *testing.T) {
	img := Cover("opaque-check", Options{Width: 80, Height: 45})
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xff {
			t.Fatal("final cover contains non-opaque pixel")
		}
	}
}

func TestShapes_DeterministicAndVisible(t *testing.T) {
	base := Gradient(256, 144, navy, rose)
	s := seed.FromSlug("shape-check")
	accent := rose

	a := Shapes(base, s, accent)
	b := Shapes(base, s, accent)
	if !pixEqual(a, b) {
		t.Error("shape overlay not deterministic")
	}
	if pixEqual(a, base) {
		t.Error("shape overlay left the base image unchanged")
	}
}

func TestGrain_Deterministic(t *testing.T) {
	base := Gradient(64, 64, navy, rose)
	a := Grain(base, 42)
	b := Grain(base, 42)
	if !pixEqual(a, b) {
		t.Error("grain not deterministic")
	}
	if pixEqual(Grain(base, 42), Grain(base, 43)) {
		t.Error("different grain seeds produced identical noise")
	}
}

func TestVignette_DarkensCornersMoreThanCenter(t *testing.T) {
	const w, h = 200, 200
	base := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(base.Pix); i += 4 {
		base.Pix[i] = 128
		base.Pix[i+1] = 128
		base.Pix[i+2] = 128
		base.Pix[i+3] = 0xff
	}

	out := Vignette(base, DefaultVignetteStrength)

	corner := out.NRGBAAt(0, 0)
	center := out.NRGBAAt(w/2, h/2)
	if corner.R >= center.R {
		t.Errorf("corner (%d) not darker than center (%d)", corner.R, center.R)
	}
	if center.R > 128 {
		t.Errorf("vignette brightened the center: %d", center.R)
	}
}

func TestVignette_ZeroStrengthNearIdentity(t *testing.T) {
	base := Gradient(64, 64, navy, rose)
	out := Vignette(base, 0)
	if !pixEqual(out, base) {
		t.Error("strength 0 altered the image")
	}
}
