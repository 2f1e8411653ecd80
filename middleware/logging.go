// Package middleware provides cross-cutting request middleware for
// handler chains: structured request logging and request IDs.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heavyk/kiss/core/handler"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip disables logging for matching requests.
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default()).
	Logger *slog.Logger

	// LogLevel for request records (default: slog.LevelInfo).
	LogLevel slog.Level
}

// Logging creates request logging middleware with defaults.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithConfig creates request logging middleware. Each request
// is logged once after completion with method, path, status, response
// size and duration.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				start := time.Now()
				rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

				var err error
				if response != nil {
					err = response(rec, r)
				}

				attrs := []any{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", rec.status),
					slog.Int64("bytes", rec.bytes),
					slog.Duration("duration", time.Since(start)),
				}
				if err != nil {
					attrs = append(attrs, slog.Any("error", err))
				}
				cfg.Logger.Log(ctx, cfg.LogLevel, "request", attrs...)

				return err
			}
		}
	}
}

// statusRecorder captures the status code and body size written
// through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.bytes += int64(n)
	return n, err
}
