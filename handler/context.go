package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/starfederation/datastar-go/datastar"
)

// Context is the request scope handed to every handler. It is a
// context.Context bound to the request and exposes the raw HTTP pair.
// SSE returns nil unless the request came from a DataStar client.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	SSE() *datastar.ServerSentEventGenerator
}

// NewContext builds a Context for w and r. The SSE stream is opened eagerly
// for DataStar requests so that responses and errors share one event stream.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	c := &httpContext{w: w, r: r}
	if IsDataStar(r) {
		c.sse = NewSSE(w, r)
	}
	return c
}

type httpContext struct {
	w   http.ResponseWriter
	r   *http.Request
	sse *datastar.ServerSentEventGenerator
}

func (c *httpContext) Request() *http.Request                  { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter     { return c.w }
func (c *httpContext) SSE() *datastar.ServerSentEventGenerator { return c.sse }

func (c *httpContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *httpContext) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *httpContext) Err() error                  { return c.r.Context().Err() }
func (c *httpContext) Value(key any) any           { return c.r.Context().Value(key) }

// ContextKey is a collision-free key for request-scoped values.
type ContextKey struct{ name string }

func (c *ContextKey) String() string {
	return c.name
}

// NewContextKey returns a key labelled name. Declare keys as package variables:
//
//	var sessionKey = handler.NewContextKey("session")
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

// ContextValue returns the value stored under key, or the zero T when it is
// missing or of another type.
//
//	session := handler.ContextValue[string](ctx, sessionKey)
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

// ContextValueOK is ContextValue that also reports whether a T was found,
// so a stored zero value can be told apart from a missing one.
func ContextValueOK[T any](ctx context.Context, key any) (T, bool) {
	val, ok := ctx.Value(key).(T)
	return val, ok
}
