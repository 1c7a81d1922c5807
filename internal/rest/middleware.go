package rest

import "net/http"

// HandlerFunc handles a request that passed every middleware of its route.
// It either writes a response and returns nil or returns an error for the
// exception filter; it never translates errors itself.
type HandlerFunc func(w http.ResponseWriter, r *Request) error

// Middleware is one stage of a route pipeline.
type Middleware interface {
	Execute(w http.ResponseWriter, r *Request, next HandlerFunc) error
}

// MiddlewareFunc adapts an ordinary function to [Middleware].
type MiddlewareFunc func(w http.ResponseWriter, r *Request, next HandlerFunc) error

func (f MiddlewareFunc) Execute(w http.ResponseWriter, r *Request, next HandlerFunc) error {
	return f(w, r, next)
}

// Chain composes middlewares in declared order around handler. Each stage
// may invoke its next at most once per request; a repeated call returns
// [ErrNextCalledTwice] without running the downstream stage again.
func Chain(handler HandlerFunc, middlewares ...Middleware) HandlerFunc {
	return func(w http.ResponseWriter, r *Request) error {
		return stage(0, handler, middlewares)(w, r)
	}
}

func stage(i int, handler HandlerFunc, middlewares []Middleware) HandlerFunc {
	called := false
	return func(w http.ResponseWriter, r *Request) error {
		if called {
			return ErrNextCalledTwice
		}
		called = true

		if i == len(middlewares) {
			return handler(w, r)
		}
		return middlewares[i].Execute(w, r, stage(i+1, handler, middlewares))
	}
}
