package render

import (
	"image"
	"testing"

	"github.com/AnyUserName/coverart-cli/internal/palette"
)

var (
	navy = palette.Color{R: 6, G: 10, B: 25, A: 255}
	rose = palette.Color{R: 244, G: 63, B: 94, A: 255}
)

func rowColor(t *testing.T, img *image.NRGBA, y, w int) palette.Color {
	t.Helper()
	c := img.NRGBAAt(0, y)
	for x := 1; x < w; x++ {
		if img.NRGBAAt(x, y) != c {
			t.Fatalf("row %d not uniform at x=%d", y, x)
		}
	}
	return c
}

func TestGradient_BoundaryRows(t *testing.T) {
	const w, h = 64, 48
	img := Gradient(w, h, navy, rose)

	if got := rowColor(t, img, 0, w); got != navy {
		t.Errorf("top row: got %v, want %v", got, navy)
	}
	if got := rowColor(t, img, h-1, w); got != rose {
		t.Errorf("bottom row: got %v, want %v", got, rose)
	}
}

func TestGradient_Interpolation(t *testing.T) {
	// With h=3 the middle row sits at t=0.5, each channel the rounded
	// midpoint of the endpoints.
	img := Gradient(4, 3, navy, rose)
	mid := rowColor(t, img, 1, 4)
	want := palette.Color{R: 125, G: 37, B: 60, A: 255} // round((6+244)/2) etc.
	if mid != want {
		t.Errorf("middle row: got %v, want %v", mid, want)
	}
}

func TestGradient_SingleRowIsC1(t *testing.T) {
	img := Gradient(16, 1, navy, rose)
	if got := rowColor(t, img, 0, 16); got != navy {
		t.Errorf("h=1 row: got %v, want c1 %v", got, navy)
	}
}

func TestGradient_Dimensions(t *testing.T) {
	cases := []struct{ w, h int }{{200, 100}, {1, 1}, {3, 7}}
	for _, c := range cases {
		img := Gradient(c.w, c.h, navy, rose)
		b := img.Bounds()
		if b.Dx() != c.w || b.Dy() != c.h {
			t.Errorf("Gradient(%d,%d): bounds %dx%d", c.w, c.h, b.Dx(), b.Dy())
		}
	}
}

func TestGradient_FullyOpaque(t *testing.T) {
	img := Gradient(32, 32, navy, rose)
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xff {
			t.Fatal("gradient contains non-opaque pixel")
		}
	}
}
