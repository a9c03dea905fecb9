// Package middleware holds the HTTP middleware shared by every route.
package middleware

import "net/http"

// Middleware wraps an http.Handler. It has the same shape chi expects in
// Router.Use.
type Middleware = func(http.Handler) http.Handler

// Chain composes mws into one Middleware. The first argument is outermost:
// Chain(a, b)(h) serves as a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
