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

// CreateUser registers a new user.
//
// Method: POST
// Path: /users/
//
// Response:
//   - 200: UserRead with an empty peaks list
//   - 400: validation failure or email already registered
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload models.UserCreate
	if apiErr := decodeJSON(r, &payload); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if apiErr := validateRequest(&payload); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	// Pre-check mirrors the original behavior; the unique constraint still
	// backstops the race between the check and the insert.
	if _, err := h.db.GetUserByEmail(r.Context(), payload.Email); err == nil {
		respondError(w, http.StatusBadRequest, "EMAIL_EXISTS", "Email already registered", nil)
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query user", err)
		return
	}

	user, err := h.db.CreateUser(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, database.ErrEmailExists) {
			respondError(w, http.StatusBadRequest, "EMAIL_EXISTS", "Email already registered", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create user", err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("user_id", user.ID).Msg("User created")
	respondJSON(w, http.StatusOK, models.NewUserRead(user, nil))
}

// ListUsers returns users with their nested peaks.
//
// Method: GET
// Path: /users/?skip=0&limit=100
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip := getIntParam(r, "skip", 0)
	limit := getIntParam(r, "limit", h.cfg.API.DefaultLimit)

	users, err := h.db.ListUsers(r.Context(), skip, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list users", err)
		return
	}

	ids := make([]int64, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	peaksByOwner, err := h.db.ListPeaksForUsers(r.Context(), ids)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list peaks", err)
		return
	}

	out := make([]models.UserRead, 0, len(users))
	for i := range users {
		out = append(out, models.NewUserRead(&users[i], peaksByOwner[users[i].ID]))
	}
	respondJSON(w, http.StatusOK, out)
}

// GetUser returns one user by id with its nested peaks.
//
// Method: GET
// Path: /users/{user_id}
//
// Response:
//   - 200: UserRead
//   - 404: no user with that id
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, apiErr := parsePathID(chi.URLParam(r, "user_id"), "user_id")
	if apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	user, err := h.db.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query user", err)
		return
	}

	peaksByOwner, err := h.db.ListPeaksForUsers(r.Context(), []int64{user.ID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list peaks", err)
		return
	}

	respondJSON(w, http.StatusOK, models.NewUserRead(user, peaksByOwner[user.ID]))
}
