package static

import "log/slog"

// Option configures a Server at construction time.
type Option func(*Server)

// WithHidden allows path segments beginning with "." to resolve. By
// default any such segment yields an unhandled request regardless of
// what exists on disk.
func WithHidden() Option {
	return func(s *Server) {
		s.hidden = true
	}
}

// WithIndex sets the file appended to directory-style paths (empty or
// trailing-slash suffixes). Default is "index.html".
func WithIndex(name string) Option {
	return func(s *Server) {
		s.index = name
	}
}

// WithCacheControl sets the cache lifetime from a duration spec: a
// bare number is milliseconds, otherwise a value with unit such as
// "30s", "5m", "2h", "1d", "1w" or "1y". The rendered header is
// "public, max-age=<seconds>".
//
// Panics on an unparsable spec so misconfiguration fails at startup
// rather than on the first request.
func WithCacheControl(spec string) Option {
	return func(s *Server) {
		d, err := parseLifetime(spec)
		if err != nil {
			panic("static.WithCacheControl: " + err.Error())
		}
		s.cacheControl = formatCacheControl(d)
	}
}

// WithETagFunc replaces the default weak ETag generator. Must only be
// called during setup; the function itself may run concurrently, once
// per resolved file.
func WithETagFunc(fn ETagFunc) Option {
	return func(s *Server) {
		if fn != nil {
			s.etagFn = fn
		}
	}
}

// WithRewriter installs a path-aliasing hook; see Rewriter.
func WithRewriter(rw Rewriter) Option {
	return func(s *Server) {
		s.rewriter = rw
	}
}

// WithTransformer installs a body-transform hook; see Transformer.
// When set, responses omit Content-Length since the transformed size
// is unknown before streaming.
func WithTransformer(tr Transformer) Option {
	return func(s *Server) {
		s.transform = tr
	}
}

// WithLogger sets the logger used by Handler for surfacing request
// failures. Default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}
