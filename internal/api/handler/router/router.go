// Package router registers handler routes on an httprouter mux.
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type Route struct {
	Path    string
	Method  string
	Handler http.Handler
}

type Router struct {
	mux *httprouter.Router
}

type ConfigRouter func(router *Router)

// WithRoutes registers a group of routes.
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

func New(configs ...ConfigRouter) Router {
	router := &Router{mux: httprouter.New()}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.mux.Handler(route.Method, route.Path, route.Handler)
	}
}
