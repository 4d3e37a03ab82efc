// Package middleware provides the HTTP middleware stack: request IDs,
// logging, panic recovery, CORS, bearer-token auth and per-IP rate limiting.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain folds middleware into one. The first argument runs outermost:
// Chain(a, b)(h) serves requests as a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}
