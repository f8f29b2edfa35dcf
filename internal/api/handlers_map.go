// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package api

import (
	"net/http"

	"github.com/tomtom215/peakmap/internal/logging"
	"github.com/tomtom215/peakmap/internal/maprender"
)

// Index renders the map of all recorded peaks.
//
// Method: GET
// Path: /
//
// Every peak becomes one marker labeled with its display string. The page
// is centered on the default viewport regardless of marker positions. All
// peaks are fetched without pagination.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	peaks, err := h.db.ListPeaksWithOwner(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list peaks", err)
		return
	}

	markers := make([]maprender.Marker, 0, len(peaks))
	for i := range peaks {
		markers = append(markers, maprender.Marker{
			Lat:   peaks[i].Lat,
			Lon:   peaks[i].Lon,
			Label: peaks[i].DisplayString(),
		})
	}

	page, err := maprender.Render(markers, maprender.DefaultOptions())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "RENDER_ERROR", "Failed to render map", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page)); err != nil {
		logging.Error().Err(err).Msg("Failed to write map page")
	}
}

// GenerateData seeds the demo user and peaks, then redirects to the map.
//
// Method: GET
// Path: /generate_data
//
// Disabled deployments (api.seed_enabled=false) answer 404. Repeated calls
// are idempotent; see database.SeedDemoData.
func (h *Handler) GenerateData(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.API.SeedEnabled {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
		return
	}

	if err := h.db.SeedDemoData(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to seed demo data", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
