// Package palette holds the fixed set of candidate colors and the
// seeded selection of background and accent colors.
package palette

import (
	"fmt"
	"image/color"

	"github.com/AnyUserName/coverart-cli/internal/seed"
)

// Color is an opaque sRGB color.
type Color = color.NRGBA

// White is the alternate fill for shape overlays.
var White = Color{R: 255, G: 255, B: 255, A: 255}

// entry pairs a reference color with its human-readable name.
type entry struct {
	name  string
	color Color
}

// Shared across all invocations, never mutated.
var palette = []entry{
	{"near-black navy", Color{R: 6, G: 10, B: 25, A: 255}},
	{"slate", Color{R: 15, G: 23, B: 42, A: 255}},
	{"deep blue", Color{R: 12, G: 74, B: 110, A: 255}},
	{"cyan", Color{R: 2, G: 132, B: 199, A: 255}},
	{"emerald", Color{R: 16, G: 185, B: 129, A: 255}},
	{"indigo", Color{R: 99, G: 102, B: 241, A: 255}},
	{"purple", Color{R: 168, G: 85, B: 247, A: 255}},
	{"rose", Color{R: 244, G: 63, B: 94, A: 255}},
	{"amber", Color{R: 245, G: 158, B: 11, A: 255}},
}

// Selection is the seed-derived color choice for one cover.
type Selection struct {
	// C1 and C2 are the gradient endpoints, always distinct.
	C1, C2 Color
	// Accent colors the shape overlay and may equal C1 or C2.
	Accent Color
}

// Pick selects the gradient pair and accent for s. Draw order is fixed:
// c1, then c2 resampled until distinct from c1, then accent.
func Pick(s uint32) Selection {
	rng := seed.NewRand(s)
	c1 := palette[rng.Intn(len(palette))].color
	c2 := palette[rng.Intn(len(palette))].color
	for c2 == c1 {
		c2 = palette[rng.Intn(len(palette))].color
	}
	accent := palette[rng.Intn(len(palette))].color
	return Selection{C1: c1, C2: c2, Accent: accent}
}

// Size returns the number of palette entries.
func Size() int { return len(palette) }

// Hex formats c as #rrggbb.
func Hex(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Name returns the reference name of c, or the hex form if c is not a
// palette entry.
func Name(c Color) string {
	for _, e := range palette {
		if e.color == c {
			return e.name
		}
	}
	return Hex(c)
}
