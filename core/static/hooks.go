package static

import "io"

// Rewriter maps an incoming request path to an alternate lookup path
// before mount matching, enabling path aliasing. The engine ships no
// implementation; a server without a rewriter leaves paths untouched.
type Rewriter interface {
	Rewrite(pathname string) string
}

// Transformer wraps the byte stream of a GET body before it is
// written, enabling on-the-fly transformation of served files. The
// engine ships no implementation. The underlying file is closed by the
// engine after streaming; Transform must not close it.
type Transformer interface {
	Transform(f *File, body io.Reader) (io.Reader, error)
}
