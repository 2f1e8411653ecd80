package static

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"
)

// Resolve maps a request path to a file on disk. It returns (nil, nil)
// when no mount yields an existing regular file, so the caller can
// fall through to its own handling; the engine itself never answers
// 404. A stat failure other than "does not exist" aborts resolution
// with an error instead of silently trying later mounts.
func (s *Server) Resolve(pathname string) (*File, error) {
	if s.rewriter != nil {
		pathname = s.rewriter.Rewrite(pathname)
	}

	if !s.hidden && hasHiddenSegment(pathname) {
		return nil, nil
	}

	for _, m := range s.mounts {
		suffix, ok := m.match(pathname)
		if !ok {
			continue
		}
		if suffix == "" || strings.HasSuffix(suffix, "/") {
			suffix += s.index
		}

		filename := safeJoin(m.Dir, suffix)

		info, err := os.Stat(filename)
		if err != nil {
			// ENOTDIR means a path component is a regular file, so
			// the requested path does not exist either way. Another
			// mount with an overlapping prefix may still hold it.
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", filename, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		return &File{
			Filename:    filename,
			Pathname:    pathname,
			Mount:       m,
			Size:        info.Size(),
			ModTime:     info.ModTime(),
			ContentType: contentType(filename),
			etagFn:      s.etagFn,
		}, nil
	}

	return nil, nil
}

// hasHiddenSegment reports whether any non-empty path segment begins
// with ".". This blocks dotfiles and dotfolders, including
// traversal-adjacent names, before the filesystem is consulted.
func hasHiddenSegment(pathname string) bool {
	for _, seg := range strings.Split(pathname, "/") {
		if seg != "" && seg[0] == '.' {
			return true
		}
	}
	return false
}

// safeJoin resolves suffix inside dir. The suffix is cleaned as a
// rooted path first, which clamps ".." sequences at the root, so the
// result can never escape dir.
func safeJoin(dir, suffix string) string {
	cleaned := path.Clean("/" + suffix)
	return filepath.Join(dir, filepath.FromSlash(cleaned))
}

func contentType(filename string) string {
	ct := mime.TypeByExtension(filepath.Ext(filename))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return ct
}
