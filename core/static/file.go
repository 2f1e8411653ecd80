package static

import (
	"os"
	"sync"
	"time"
)

// File is the result of resolving a request path against the mount
// table. A File belongs to a single request and is never shared, so no
// cross-request caching or invalidation applies to it.
type File struct {
	// Filename is the absolute path of the file on disk. It always
	// lies within Mount.Dir.
	Filename string
	// Pathname is the request path the file was resolved from.
	Pathname string
	// Mount is the entry that produced the match.
	Mount *MountEntry
	// Size in bytes, from the stat that resolved the file.
	Size int64
	// ModTime from the same stat.
	ModTime time.Time
	// ContentType is derived from the filename extension, falling back
	// to "application/octet-stream".
	ContentType string

	etagFn   ETagFunc
	etagOnce sync.Once
	etag     string
}

// ETag returns the entity validator for the file. The configured
// generator runs at most once per File; repeated calls return the
// memoized value.
func (f *File) ETag() string {
	f.etagOnce.Do(func() {
		if f.etagFn != nil {
			f.etag = f.etagFn(f)
		}
	})
	return f.etag
}

// Open opens the underlying file for streaming. The caller owns the
// handle and must close it on every exit path.
func (f *File) Open() (*os.File, error) {
	return os.Open(f.Filename)
}
