package static

import "errors"

var (
	// ErrMountPrefix reports an invalid mount prefix. Mount fails with
	// this error when a non-empty prefix does not begin with "/";
	// callers should treat it as fatal configuration.
	ErrMountPrefix = errors.New("mount prefix must begin with '/'")

	// ErrMountDir reports a mount directory that could not be resolved
	// to an absolute path.
	ErrMountDir = errors.New("mount directory cannot be resolved")

	// ErrStream reports a failure while writing an already-committed
	// response body. The status line and headers are on the wire at
	// that point, so the request cannot be answered differently; the
	// connection should be torn down instead of truncated silently.
	ErrStream = errors.New("response stream failed")
)
