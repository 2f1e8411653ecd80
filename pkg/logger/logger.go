// Package logger builds configured slog loggers and provides small
// attribute helpers for consistent structured logging.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type options struct {
	writer io.Writer
	level  slog.Level
	json   bool
	attrs  []slog.Attr
}

// Option configures the logger returned by New.
type Option func(*options)

// WithWriter sets the output destination (default os.Stdout).
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithLevelString sets the minimum level from a config string
// ("debug", "info", "warn", "error"). Unknown strings mean info.
func WithLevelString(level string) Option {
	return func(o *options) {
		o.level = ParseLevel(level)
	}
}

// WithJSON switches output to JSON, for log collectors.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithAttrs attaches attributes to every record.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// New returns a configured *slog.Logger. Defaults: text output to
// stdout at info level.
func New(opts ...Option) *slog.Logger {
	o := &options{
		writer: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(o)
	}

	hopts := &slog.HandlerOptions{Level: o.level}

	var h slog.Handler
	if o.json {
		h = slog.NewJSONHandler(o.writer, hopts)
	} else {
		h = slog.NewTextHandler(o.writer, hopts)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}

	return slog.New(h)
}

// ParseLevel maps a config string to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
