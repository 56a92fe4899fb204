// Package middleware provides the HTTP middleware chain and the middleware
// the API installs on it.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// System accumulates middleware and applies it to a handler.
type System interface {
	Use(mw Middleware)
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &system{stack: []Middleware{}}
}

// Use appends mw. The first registered middleware is the outermost.
func (s *system) Use(mw Middleware) {
	s.stack = append(s.stack, mw)
}

// Apply wraps handler with every registered middleware.
func (s *system) Apply(handler http.Handler) http.Handler {
	for i := len(s.stack) - 1; i >= 0; i-- {
		handler = s.stack[i](handler)
	}
	return handler
}
