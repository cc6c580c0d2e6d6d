package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to hexLen characters. Cover filenames embed 8 hex chars;
// the manifest records the full 16, which is collision-safe for
// practical batch sizes.
func ContentHash(data []byte, hexLen int) string {
	return truncate(hexString(xxhash.Sum64(data)), hexLen)
}

// ContentHashReader computes xxHash64 from a reader, streaming. Used
// when verifying covers already on disk.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return truncate(hexString(h.Sum64()), hexLen), nil
}

func hexString(v uint64) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return hex.EncodeToString(b[:])
}

func truncate(s string, n int) string {
	if n > 0 && n < len(s) {
		return s[:n]
	}
	return s
}
