package static

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MountEntry binds a URL prefix to a directory on disk. Entries are
// immutable after registration and consulted in registration order.
type MountEntry struct {
	// Prefix begins and ends with "/".
	Prefix string
	// Dir is the mount directory, resolved to an absolute path at
	// registration so later working-directory changes cannot move it.
	Dir string
}

// match reports whether pathname falls under the entry's prefix and
// returns the remaining suffix. Matching trims the trailing slash and
// compares raw string prefixes, so a mount at "/api" also matches
// "/apiary" (suffix "ary"). Segment-boundary matching is deliberately
// not applied; see the package documentation.
func (e *MountEntry) match(pathname string) (string, bool) {
	trimmed := strings.TrimSuffix(e.Prefix, "/")
	if !strings.HasPrefix(pathname, trimmed) {
		return "", false
	}
	return pathname[len(trimmed):], true
}

// Mount registers a directory under the given URL prefix. An empty
// prefix defaults to "/"; any other prefix must begin with "/" and is
// normalized to end with "/". The directory is resolved to an absolute
// path immediately. Mounts are additive for the server lifetime; there
// is no removal.
//
// Mount must not be called concurrently with request serving.
func (s *Server) Mount(prefix, dir string) error {
	if prefix == "" {
		prefix = "/"
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("%w: %q", ErrMountPrefix, prefix)
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrMountDir, dir, err)
	}

	s.mounts = append(s.mounts, &MountEntry{Prefix: prefix, Dir: abs})
	return nil
}

// Mounts returns the registered mount table in registration order.
func (s *Server) Mounts() []*MountEntry {
	out := make([]*MountEntry, len(s.mounts))
	copy(out, s.mounts)
	return out
}
