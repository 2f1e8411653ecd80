package logger

import "log/slog"

// Error returns an "error" attribute, or an empty attribute for nil so
// it disappears from the record.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Group namespaces the given attributes under key.
func Group(key string, attrs ...slog.Attr) slog.Attr {
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return slog.Group(key, args...)
}
