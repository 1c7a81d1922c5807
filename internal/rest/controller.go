package rest

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/utils"
)

var supportedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// Route is one entry of a controller's route table.
type Route struct {
	Method      string
	Path        string
	Handler     HandlerFunc
	Middlewares []Middleware
}

// Controller resolves a method and a controller-relative path to a route.
type Controller interface {
	Match(method, path string) (route Route, params map[string]string, ok bool)
}

type compiledRoute struct {
	Route
	segments []string
}

// BaseController keeps an ordered route table and the response helpers
// shared by resource controllers. Resource controllers embed it and
// register their routes from their constructor.
type BaseController struct {
	routes []compiledRoute
	logger *logger.Logger
}

func NewBaseController(logger *logger.Logger) *BaseController {
	return &BaseController{logger: logger}
}

// AddRoute appends route to the table. Path segments written as {name} or
// :name are parameters. AddRoute panics on an unsupported method, a nil
// handler, or a method and path pattern already registered.
func (c *BaseController) AddRoute(route Route) {
	route.Method = strings.ToUpper(route.Method)
	if !slices.Contains(supportedMethods, route.Method) {
		panic(fmt.Sprintf("rest: unsupported method %q for route %q", route.Method, route.Path))
	}
	if route.Handler == nil {
		panic(fmt.Sprintf("rest: nil handler for route %s %s", route.Method, route.Path))
	}

	segments := compilePath(route.Path)
	for _, existing := range c.routes {
		if existing.Method == route.Method && samePattern(existing.segments, segments) {
			panic(fmt.Sprintf("rest: duplicate route %s %s", route.Method, route.Path))
		}
	}

	c.routes = append(c.routes, compiledRoute{Route: route, segments: segments})
	c.logger.Debug().
		Str("method", route.Method).
		Str("path", route.Path).
		Int("middlewares", len(route.Middlewares)).
		Msg("route registered")
}

// Match returns the first registered route whose method and pattern match.
func (c *BaseController) Match(method, path string) (Route, map[string]string, bool) {
	segments := splitPath(path)
	for _, route := range c.routes {
		if route.Method != method {
			continue
		}
		if params, ok := matchSegments(route.segments, segments); ok {
			return route.Route, params, true
		}
	}

	return Route{}, nil, false
}

// Routes returns the registered routes in registration order.
func (c *BaseController) Routes() []Route {
	routes := make([]Route, 0, len(c.routes))
	for _, route := range c.routes {
		routes = append(routes, route.Route)
	}
	return routes
}

func (c *BaseController) Send(w http.ResponseWriter, statusCode int, data any) error {
	_, err := utils.WriteJSON(w, data, statusCode)
	return err
}

func (c *BaseController) OK(w http.ResponseWriter, data any) error {
	return c.Send(w, http.StatusOK, data)
}

func (c *BaseController) Created(w http.ResponseWriter, data any) error {
	return c.Send(w, http.StatusCreated, data)
}

func (c *BaseController) NoContent(w http.ResponseWriter) error {
	return c.Send(w, http.StatusNoContent, nil)
}

// ── path patterns ──

func compilePath(path string) []string {
	segments := splitPath(path)
	for i, s := range segments {
		if name, ok := strings.CutPrefix(s, ":"); ok {
			segments[i] = "{" + name + "}"
		}
	}
	return segments
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func paramName(segment string) (string, bool) {
	if len(segment) > 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
		return segment[1 : len(segment)-1], true
	}
	return "", false
}

func samePattern(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		_, aParam := paramName(a[i])
		_, bParam := paramName(b[i])
		if aParam != bParam || (!aParam && a[i] != b[i]) {
			return false
		}
	}
	return true
}

func matchSegments(pattern, path []string) (map[string]string, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}

	params := make(map[string]string)
	for i, p := range pattern {
		if name, ok := paramName(p); ok {
			if path[i] == "" {
				return nil, false
			}
			params[name] = path[i]
			continue
		}
		if p != path[i] {
			return nil, false
		}
	}
	return params, true
}
