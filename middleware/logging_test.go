package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heavyk/kiss/core/handler"
	"github.com/heavyk/kiss/middleware"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs_method_path_status", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		h := middleware.LoggingWithConfig[*handler.BaseContext](middleware.LoggingConfig{
			Logger: log,
		})(func(ctx *handler.BaseContext) handler.Response {
			return func(w http.ResponseWriter, r *http.Request) error {
				w.WriteHeader(http.StatusCreated)
				_, err := w.Write([]byte("done"))
				return err
			}
		})

		rec := httptest.NewRecorder()
		handler.Adapt(handler.NewContext, h, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/upload", nil))

		out := buf.String()
		assert.Contains(t, out, "method=POST")
		assert.Contains(t, out, "path=/upload")
		assert.Contains(t, out, "status=201")
		assert.Contains(t, out, "bytes=4")
	})

	t.Run("logs_handler_errors_and_propagates", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		boom := errors.New("disk on fire")

		h := middleware.LoggingWithConfig[*handler.BaseContext](middleware.LoggingConfig{
			Logger: log,
		})(func(ctx *handler.BaseContext) handler.Response {
			return func(w http.ResponseWriter, r *http.Request) error { return boom }
		})

		var got error
		errorHandler := func(ctx *handler.BaseContext, err error) { got = err }
		handler.Adapt(handler.NewContext, h, errorHandler).
			ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.ErrorIs(t, got, boom)
		assert.Contains(t, buf.String(), "disk on fire")
	})

	t.Run("skip_suppresses_logging", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		h := middleware.LoggingWithConfig[*handler.BaseContext](middleware.LoggingConfig{
			Logger: log,
			Skip: func(ctx handler.Context) bool {
				return ctx.Request().URL.Path == "/health"
			},
		})(func(ctx *handler.BaseContext) handler.Response {
			return func(w http.ResponseWriter, r *http.Request) error {
				w.WriteHeader(http.StatusOK)
				return nil
			}
		})

		handler.Adapt(handler.NewContext, h, nil).
			ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Empty(t, buf.String())
	})
}
