// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/peakmap/internal/middleware"
)

// Router wires handlers and middleware into the Chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router over the given handler. A nil middleware
// config falls back to the secure defaults.
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
// This allows our existing middleware to work with Chi's r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using Chi router.
//
// The country gate wraps every application route. Health and metrics stay
// outside the gate so monitoring works from anywhere.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

	// Operational endpoints, never gated.
	r.Get("/healthz", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Application endpoints behind the country gate. Trailing slashes are
	// significant and match the published paths exactly.
	r.Group(func(r chi.Router) {
		r.Use(chiMiddleware(router.handler.CountryGate))

		r.Get("/", router.handler.Index)
		r.Get("/generate_data", router.handler.GenerateData)

		r.Post("/users/", router.handler.CreateUser)
		r.Get("/users/", router.handler.ListUsers)
		r.Get("/users/{user_id}", router.handler.GetUser)
		r.Post("/users/{user_id}/peaks/", router.handler.CreatePeakForUser)

		r.Get("/peaks/", router.handler.ListPeaks)
	})

	return r
}
