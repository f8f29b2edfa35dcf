// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package api

import (
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/peakmap/internal/logging"
	"github.com/tomtom215/peakmap/internal/models"
	"github.com/tomtom215/peakmap/internal/validation"
)

// respondJSON writes the payload directly as the response body. Successful
// responses carry the read shape with no envelope, matching the original
// wire format.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends an error response wrapped in the error envelope.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", code).Err(err).Msg("API error")
	}

	respondJSON(w, status, &models.ErrorResponse{
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// decodeJSON deserializes the request body into v. Returns an APIError
// describing the failure, or nil on success.
func decodeJSON(r *http.Request, v interface{}) *models.APIError {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return &models.APIError{
			Code:    "VALIDATION_ERROR",
			Message: "Request body is not valid JSON for this resource: " + err.Error(),
		}
	}
	return nil
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError naming the
// offending field.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// getIntParam extracts an integer query parameter with a default value.
// Malformed values fall back to the default.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil || intValue < 0 {
		return defaultValue
	}
	return intValue
}

// parsePathID parses an integer path parameter. Returns an APIError for
// non-numeric values.
func parsePathID(value, name string) (int64, *models.APIError) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &models.APIError{
			Code:    "VALIDATION_ERROR",
			Message: name + " must be an integer",
		}
	}
	return id, nil
}
