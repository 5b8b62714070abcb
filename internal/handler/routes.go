package handler

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
	"github.com/Quinhas/sgpg-api/pkg/response"
)

// Route binds one method and path to a handler.
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// RouteProvider contributes routes to the table.
type RouteProvider interface {
	Routes() []Route
}

// Table collects the routes of every provider in order.
func Table(providers ...RouteProvider) []Route {
	var routes []Route
	for _, p := range providers {
		routes = append(routes, p.Routes()...)
	}
	return routes
}

// Register mounts routes on r.
func Register(r gin.IRoutes, routes []Route) {
	for _, rt := range routes {
		r.Handle(rt.Method, rt.Path, rt.Handler)
	}
}

// NotFound answers unmatched routes.
func NotFound(c *gin.Context) {
	response.Error(c, appErrors.ErrRouteNotFound)
}
