package hasher

import (
	"bytes"
	"testing"
)

func TestContentHash_Truncation(t *testing.T) {
	data := []byte("cover bytes")
	full := ContentHash(data, 0)
	if len(full) != 16 {
		t.Fatalf("full hash length: got %d, want 16", len(full))
	}
	short := ContentHash(data, 8)
	if len(short) != 8 || short != full[:8] {
		t.Errorf("truncated hash: got %q, want prefix of %q", short, full)
	}
}

func TestContentHash_Deterministic(t *testing.T) {
	a := ContentHash([]byte("same"), 16)
	b := ContentHash([]byte("same"), 16)
	if a != b {
		t.Error("hash not stable")
	}
	if a == ContentHash([]byte("different"), 16) {
		t.Error("distinct inputs collided")
	}
}

func TestContentHashReader_MatchesBytes(t *testing.T) {
	data := []byte("streamed cover bytes")
	want := ContentHash(data, 16)
	got, err := ContentHashReader(bytes.NewReader(data), 16)
	if err != nil {
		t.Fatalf("reader hash: %v", err)
	}
	if got != want {
		t.Errorf("reader hash %q != byte hash %q", got, want)
	}
}
