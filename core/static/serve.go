package static

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/heavyk/kiss/core/handler"
)

// allowedMethods is the fixed Allow value reported on 204 and 405.
const allowedMethods = "OPTIONS,HEAD,GET"

// Serve answers the request from the mount table. It reports whether
// the request was handled; (false, nil) means no mount matched and the
// caller should continue its own fallback chain.
//
// A non-nil error with nothing yet written (resolution or body-open
// failure) should surface upstream as a 500-class response. An error
// wrapping ErrStream means the status line and headers were already
// committed; the only safe recovery is to abort the connection.
func (s *Server) Serve(w http.ResponseWriter, r *http.Request) (bool, error) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	case http.MethodOptions:
		w.Header().Set("Allow", allowedMethods)
		w.WriteHeader(http.StatusNoContent)
		return true, nil
	default:
		w.Header().Set("Allow", allowedMethods)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return true, nil
	}

	f, err := s.Resolve(r.URL.Path)
	if err != nil {
		return true, err
	}
	if f == nil {
		return false, nil
	}

	// Validators and caching headers are set before the freshness
	// check and stay in place on 304: clients need them to compare
	// against.
	h := w.Header()
	if !f.ModTime.IsZero() {
		h.Set("Last-Modified", f.ModTime.UTC().Format(http.TimeFormat))
	}
	if s.transform == nil {
		h.Set("Content-Length", strconv.FormatInt(f.Size, 10))
	}
	h.Set("Content-Type", f.ContentType)
	if tag := f.ETag(); tag != "" {
		h.Set("ETag", tag)
	}
	h.Set("Cache-Control", s.cacheControl)

	if fresh(r.Header, h) {
		w.WriteHeader(http.StatusNotModified)
		return true, nil
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return true, nil
	}

	body, err := f.Open()
	if err != nil {
		// Nothing is committed yet; the caller may still answer with
		// an error status.
		return true, fmt.Errorf("open %s: %w", f.Filename, err)
	}
	defer body.Close()

	var src io.Reader = body
	if s.transform != nil {
		src, err = s.transform.Transform(f, body)
		if err != nil {
			return true, fmt.Errorf("transform %s: %w", f.Pathname, err)
		}
	}

	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, src); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrStream, f.Pathname, err)
	}
	return true, nil
}

// Handler adapts the engine to http.Handler. Unhandled paths are
// passed to next, or answered with a plain 404 when next is nil.
// Stream failures abort the connection via http.ErrAbortHandler so the
// peer sees a broken transfer rather than a silently truncated one.
func (s *Server) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handled, err := s.Serve(w, r)
		if err != nil {
			if errors.Is(err, ErrStream) {
				s.logger.Error("aborting response", "path", r.URL.Path, "error", err)
				panic(http.ErrAbortHandler)
			}
			s.logger.Error("request failed", "path", r.URL.Path, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if handled {
			return
		}
		if next != nil {
			next.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// HandlerFunc mounts the engine into a handler chain. Errors propagate
// to the chain's error handler; unhandled paths answer 404 since a
// chain has no further fallback.
func HandlerFunc[C handler.Context](s *Server) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			handled, err := s.Serve(w, r)
			if err != nil {
				return err
			}
			if !handled {
				http.NotFound(w, r)
			}
			return nil
		}
	}
}
