package static

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

// ETagFunc produces the entity validator for a resolved file. The
// function runs at most once per File; see File.ETag.
type ETagFunc func(*File) string

// WeakETag derives a weak validator from file size and modification
// time. It is the default generator: cheap, stable across identical
// stats, and good enough for cache validation of on-disk files.
func WeakETag(f *File) string {
	return fmt.Sprintf(`W/"%x-%x"`, f.Size, f.ModTime.UnixMilli())
}

// StrongETag hashes the file contents with BLAKE3 and returns a strong
// validator. It reads the whole file once per request, so prefer it
// only where byte-exact validation matters more than resolve cost.
// Falls back to WeakETag if the file cannot be read.
func StrongETag(f *File) string {
	fh, err := f.Open()
	if err != nil {
		return WeakETag(f)
	}
	defer fh.Close()

	h := blake3.New()
	if _, err := io.Copy(h, fh); err != nil {
		return WeakETag(f)
	}
	return `"` + hex.EncodeToString(h.Sum(nil)) + `"`
}
