// Package routes builds the httprouter multiplexer from registered routes.
// Unmatched paths and methods are written as classified JSON errors.
package routes

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/market-api/pkg/failure"
	"github.com/JaimeStill/market-api/pkg/handlers"
	pkgroutes "github.com/JaimeStill/market-api/pkg/routes"
	"github.com/julienschmidt/httprouter"
)

type routes struct {
	routes  []pkgroutes.Route
	groups  []pkgroutes.Group
	logger  *slog.Logger
	onError handlers.ErrorFunc
}

// New creates a route system. onError writes the 404 and 405 responses for
// requests no route matches.
func New(logger *slog.Logger, onError handlers.ErrorFunc) pkgroutes.System {
	return &routes{
		logger:  logger.With("system", "routes"),
		onError: onError,
		groups:  []pkgroutes.Group{},
		routes:  []pkgroutes.Route{},
	}
}

func (r *routes) Groups() []pkgroutes.Group {
	return r.groups
}

func (r *routes) Routes() []pkgroutes.Route {
	return r.routes
}

// RegisterRoute adds a route to the route system.
func (r *routes) RegisterRoute(route pkgroutes.Route) {
	r.routes = append(r.routes, route)
}

// RegisterGroup adds a route group to the route system.
func (r *routes) RegisterGroup(group pkgroutes.Group) {
	r.groups = append(r.groups, group)
}

// Build constructs an http.Handler from all registered routes and groups.
func (r *routes) Build() http.Handler {
	router := httprouter.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = true

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.onError(w, req, &failure.RouteNotFound{})
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.onError(w, req, &failure.MethodNotAllowed{})
	})

	for _, route := range r.routes {
		r.handle(router, route.Method, route.Pattern, route.Handler)
	}

	for _, group := range r.groups {
		r.registerGroup(router, "", group)
	}

	return router
}

func (r *routes) registerGroup(router *httprouter.Router, parentPrefix string, group pkgroutes.Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		r.handle(router, route.Method, fullPrefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		r.registerGroup(router, fullPrefix, child)
	}
}

func (r *routes) handle(router *httprouter.Router, method, pattern string, h http.HandlerFunc) {
	if pattern == "" {
		pattern = "/"
	}
	router.HandlerFunc(method, pattern, h)
	r.logger.Debug("route registered", "method", method, "pattern", pattern)
}
