package static

import (
	"io"
	"log/slog"
)

// Server resolves request paths against its mount table and serves the
// matching files. Configuration is fixed at construction and mounts
// are registered before serving begins, so request handling reads the
// server without locking.
type Server struct {
	mounts       []*MountEntry
	index        string
	hidden       bool
	cacheControl string
	etagFn       ETagFunc
	rewriter     Rewriter
	transform    Transformer
	logger       *slog.Logger
}

// New creates a Server. Defaults: index file "index.html", hidden
// paths refused, weak size/mtime ETags, "public, max-age=31536000"
// (one year) cache control, and a discarded logger.
func New(opts ...Option) *Server {
	s := &Server{
		index:        "index.html",
		cacheControl: defaultCacheControl,
		etagFn:       WeakETag,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
