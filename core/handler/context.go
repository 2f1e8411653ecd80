package handler

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Context is the contract for request contexts. BaseContext is the
// default implementation; applications embed it to add their own
// request-scoped state.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}

// BaseContext is the default Context over a net/http request pair.
// Values set with SetValue shadow the request context's values.
type BaseContext struct {
	w http.ResponseWriter
	r *http.Request

	mu     sync.RWMutex
	values map[any]any
}

// NewContext creates a BaseContext for the given request pair.
func NewContext(w http.ResponseWriter, r *http.Request) *BaseContext {
	return &BaseContext{w: w, r: r}
}

func (c *BaseContext) Request() *http.Request              { return c.r }
func (c *BaseContext) ResponseWriter() http.ResponseWriter { return c.w }

// Param returns the named path value captured by the routing pattern.
func (c *BaseContext) Param(key string) string {
	return c.r.PathValue(key)
}

// SetValue stores a request-scoped value.
func (c *BaseContext) SetValue(key, val any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

func (c *BaseContext) Value(key any) any {
	c.mu.RLock()
	if v, ok := c.values[key]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()
	return c.r.Context().Value(key)
}

func (c *BaseContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *BaseContext) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *BaseContext) Err() error                  { return c.r.Context().Err() }
