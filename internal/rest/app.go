package rest

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/go-chi/chi/v5"
)

// App dispatches requests to mounted controllers.
type App struct {
	router      chi.Router
	middlewares []Middleware
	filter      ExceptionFilter
	logger      *logger.Logger
}

// NewApp creates an App on top of router. Requests that reach router but
// match no mounted controller are answered through filter with 404.
func NewApp(router chi.Router, filter ExceptionFilter, logger *logger.Logger) *App {
	app := &App{
		router: router,
		filter: filter,
		logger: logger,
	}

	router.NotFound(app.notFound)
	router.MethodNotAllowed(app.notFound)

	return app
}

// Use appends global middlewares. They run before route matching, in order,
// for every request served by a mounted controller.
func (a *App) Use(middlewares ...Middleware) {
	a.middlewares = append(a.middlewares, middlewares...)
}

// Register mounts controller under prefix.
func (a *App) Register(prefix string, controller Controller) {
	a.router.Mount(prefix, a.Handler(controller))
	a.logger.Info().Str("prefix", prefix).Msg("controller registered")
}

// Handler returns an http.Handler serving controller. The controller sees
// the path relative to its chi mount point.
func (a *App) Handler(controller Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.serve(w, r, func(w http.ResponseWriter, req *Request) error {
			route, params, ok := controller.Match(r.Method, routePath(r))
			if !ok {
				return routeNotFound(r)
			}

			req.Params = params
			return Chain(route.Handler, route.Middlewares...)(w, req)
		})
	})
}

func (a *App) notFound(w http.ResponseWriter, r *http.Request) {
	a.serve(w, r, func(w http.ResponseWriter, req *Request) error {
		return routeNotFound(r)
	})
}

func (a *App) serve(w http.ResponseWriter, r *http.Request, dispatch HandlerFunc) {
	rw := newResponseWriter(w)
	req := NewRequest(r)

	defer func() {
		if rec := recover(); rec != nil {
			logger.FromRequest(r).Error().
				Str("stack", string(debug.Stack())).
				Msgf("panic while serving %s %s", r.Method, r.URL.Path)
			a.handleError(rw, req, fmt.Errorf("%w: %v", ErrPanic, rec))
		}
	}()

	if err := Chain(dispatch, a.middlewares...)(rw, req); err != nil {
		a.handleError(rw, req, err)
	}
}

func (a *App) handleError(w *responseWriter, r *Request, err error) {
	if w.wroteHeader {
		logger.FromRequest(r.Request).Err(err).
			Int("status", w.status).
			Msg("error after response was started")
		return
	}

	a.filter.Catch(w, r.Request, err)
}

func routeNotFound(r *http.Request) *HTTPError {
	return NewNotFoundError(fmt.Sprintf("Route %s %s not found", r.Method, r.URL.Path), "App")
}

func routePath(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath != "" {
		return rctx.RoutePath
	}
	return r.URL.Path
}
