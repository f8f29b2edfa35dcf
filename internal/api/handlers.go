// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

// Package api provides the HTTP surface of Peakmap: the Chi router, the
// geographic access gate, and the request handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and parameter helpers
//   - handlers_users.go: user endpoints
//   - handlers_peaks.go: peak endpoints
//   - handlers_map.go: map page and fixture seeding
//   - handlers_health.go: liveness endpoint
//   - access_gate.go: country access gate middleware
//   - chi_router.go, chi_middleware.go: route tree and middleware factories
package api

import (
	"time"

	"github.com/tomtom215/peakmap/internal/config"
	"github.com/tomtom215/peakmap/internal/database"
	"github.com/tomtom215/peakmap/internal/geoip"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	db        *database.DB
	cfg       *config.Config
	resolver  geoip.Resolver // nil when the access gate is disabled
	startTime time.Time
}

// NewHandler creates a new API handler with all required dependencies.
// The resolver may be nil, in which case the access gate passes everything
// through.
func NewHandler(db *database.DB, cfg *config.Config, resolver geoip.Resolver) *Handler {
	return &Handler{
		db:        db,
		cfg:       cfg,
		resolver:  resolver,
		startTime: time.Now(),
	}
}
