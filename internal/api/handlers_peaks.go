// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/peakmap/internal/database"
	"github.com/tomtom215/peakmap/internal/logging"
	"github.com/tomtom215/peakmap/internal/models"
)

// CreatePeakForUser records a peak owned by the user in the path.
//
// Method: POST
// Path: /users/{user_id}/peaks/
//
// The owner id is not pre-checked; a nonexistent owner surfaces as the
// storage foreign key violation.
//
// Response:
//   - 200: PeakRead
//   - 400: validation failure
//   - 409: duplicate peak name, or owner does not exist
func (h *Handler) CreatePeakForUser(w http.ResponseWriter, r *http.Request) {
	ownerID, apiErr := parsePathID(chi.URLParam(r, "user_id"), "user_id")
	if apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	var payload models.PeakCreate
	if apiErr := decodeJSON(r, &payload); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if apiErr := validateRequest(&payload); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	peak, err := h.db.CreatePeak(r.Context(), payload.Name, *payload.Lat, *payload.Lon, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrOwnerNotFound):
			respondError(w, http.StatusConflict, "OWNER_NOT_FOUND", "Owner user does not exist", nil)
		case errors.Is(err, database.ErrPeakNameExists):
			respondError(w, http.StatusConflict, "NAME_EXISTS", "Peak name already registered", nil)
		default:
			respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create peak", err)
		}
		return
	}

	logging.Ctx(r.Context()).Info().Int64("peak_id", peak.ID).Int64("owner_id", ownerID).Msg("Peak created")
	respondJSON(w, http.StatusOK, models.NewPeakRead(peak))
}

// ListPeaks returns peaks in creation order.
//
// Method: GET
// Path: /peaks/?skip=0&limit=100
func (h *Handler) ListPeaks(w http.ResponseWriter, r *http.Request) {
	skip := getIntParam(r, "skip", 0)
	limit := getIntParam(r, "limit", h.cfg.API.DefaultLimit)

	peaks, err := h.db.ListPeaks(r.Context(), skip, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list peaks", err)
		return
	}

	out := make([]models.PeakRead, 0, len(peaks))
	for i := range peaks {
		out = append(out, models.NewPeakRead(&peaks[i]))
	}
	respondJSON(w, http.StatusOK, out)
}
