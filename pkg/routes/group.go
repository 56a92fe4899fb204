// Package routes defines route groups and the registration contract the
// HTTP router implements.
package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
	Children    []Group
}

// Route represents an HTTP route. Pattern segments starting with ":" are
// named parameters, e.g. "/:id/sellers".
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Param returns the named path parameter matched for r, or "".
func Param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}
