// Package handler defines the request-handling contract shared by the
// engine, middleware and binaries: type-safe handlers over a custom
// context, composable middleware, and an adapter onto net/http.
package handler

import (
	"errors"
	"net/http"
)

// Response renders an HTTP response. It sets headers, status code and
// body; rendering errors are passed to the chain's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe HTTP request handler with custom context
// support.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler handles errors during request processing.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// ErrNilResponse is passed to the error handler when a handler returns
// a nil Response.
var ErrNilResponse = errors.New("handler returned nil response")

// Chain composes middleware into one. The first middleware is the
// outermost: Chain(a, b)(h) behaves as a(b(h)).
func Chain[C Context](mw ...Middleware[C]) Middleware[C] {
	return func(next HandlerFunc[C]) HandlerFunc[C] {
		for i := len(mw) - 1; i >= 0; i-- {
			next = mw[i](next)
		}
		return next
	}
}

// Adapt converts a HandlerFunc into an http.Handler using the given
// context factory. Handler and rendering errors go to errorHandler;
// a nil errorHandler drops them.
func Adapt[C Context](newCtx func(http.ResponseWriter, *http.Request) C, h HandlerFunc[C], errorHandler ErrorHandler[C]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := newCtx(w, r)

		resp := h(ctx)
		if resp == nil {
			if errorHandler != nil {
				errorHandler(ctx, ErrNilResponse)
			}
			return
		}

		if err := resp(w, r); err != nil && errorHandler != nil {
			errorHandler(ctx, err)
		}
	})
}
