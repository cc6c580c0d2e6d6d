// Package encoder turns rendered covers into PNG bytes.
package encoder

import (
	"bytes"
	"image"
	"image/png"
	"io"
)

// PNG encodes img with best compression. Rendered covers are fully
// opaque, so the standard encoder emits 24-bit truecolor with no alpha
// channel.
func PNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(256 * 1024) // pre-alloc 256KB

	if err := WritePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNG streams the encoded image to w.
func WritePNG(w io.Writer, img image.Image) error {
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}
