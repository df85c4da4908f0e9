// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-book-tracker/internal/utils"
	"github.com/MKhiriev/go-book-tracker/models"
	"github.com/go-chi/chi/v5"
)

const msgRouteNotFound = "Route not found"

// CheckHTTPMethod returns a handler intended to be registered as the
// router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405 it answers 404 with a JSON message whenever the
// requested method is not registered for the matched route, so that
// callers using an unsupported method cannot tell the route exists.
// chi propagates the handler to sub-routers mounted with Route, which
// covers /books/{id} as well.
//
// If the method IS registered for a route whose pattern equals the raw
// request path, the request is forwarded to the router as usual.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteJSON(w, models.MessageResponse{Message: msgRouteNotFound}, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
