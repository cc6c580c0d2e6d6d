package pipeline

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/coverart-cli/internal/encoder"
	"github.com/AnyUserName/coverart-cli/internal/hasher"
	"github.com/AnyUserName/coverart-cli/internal/manifest"
	"github.com/AnyUserName/coverart-cli/internal/palette"
	"github.com/AnyUserName/coverart-cli/internal/render"
	"github.com/AnyUserName/coverart-cli/internal/seed"
)

// coverResult holds the outcome of generating one cover.
type coverResult struct {
	slug  string
	cover manifest.Cover
	err   error
}

// generateCover renders, encodes and writes a single cover.
func generateCover(slug string, cfg Config) coverResult {
	result := coverResult{slug: slug}

	s := seed.FromSlug(slug)
	sel := palette.Pick(s)

	img := render.Cover(slug, render.Options{Width: cfg.Width, Height: cfg.Height})

	data, err := encoder.PNG(img)
	if err != nil {
		result.err = fmt.Errorf("encode %q: %w", slug, err)
		return result
	}

	contentHash := hasher.ContentHash(data, 16)

	// Filename: <key>.<w>x<h>.<hash8>.png
	fileName := fmt.Sprintf("%s.%dx%d.%s.png",
		slugKey(slug), cfg.Width, cfg.Height, contentHash[:8])

	outPath := filepath.Join(cfg.OutputDir, fileName)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		result.err = fmt.Errorf("write %s: %w", fileName, err)
		return result
	}

	result.cover = manifest.Cover{
		Seed: s,
		Colors: manifest.Colors{
			Background: [2]string{palette.Hex(sel.C1), palette.Hex(sel.C2)},
			Accent:     palette.Hex(sel.Accent),
		},
		AvgColor: avgColor(img),
		Path:     fileName,
		Size:     int64(len(data)),
		Hash:     contentHash,
	}
	return result
}

// slugKey makes a slug safe to embed in a filename. Anything outside
// [A-Za-z0-9._-] becomes a dash.
func slugKey(slug string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_' || r == '-':
			return r
		default:
			return '-'
		}
	}, slug)
}

// avgColor calculates the average RGB color of the final image. Stored
// in the manifest so consumers can pick matching UI chrome without
// decoding the PNG.
func avgColor(img *image.NRGBA) [3]uint8 {
	b := img.Bounds()
	count := uint64(b.Dx()) * uint64(b.Dy())
	if count == 0 {
		return [3]uint8{}
	}
	var rSum, gSum, bSum uint64
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		for x := 0; x < len(row); x += 4 {
			rSum += uint64(row[x])
			gSum += uint64(row[x+1])
			bSum += uint64(row[x+2])
		}
	}
	return [3]uint8{
		uint8(rSum / count),
		uint8(gSum / count),
		uint8(bSum / count),
	}
}
