// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package models

// APIError describes a request failure in an error response body.
//
// Codes used by the API:
//   - VALIDATION_ERROR: malformed or missing input field (400)
//   - EMAIL_EXISTS: duplicate email on user creation (400)
//   - NAME_EXISTS: duplicate peak name (409)
//   - OWNER_NOT_FOUND: peak references a nonexistent user (409)
//   - NOT_FOUND: lookup by id found no record (404)
//   - ACCESS_DENIED: caller's resolved country is not allowed (403)
//   - GEOIP_ERROR: country lookup failed (500)
//   - RENDER_ERROR: map page rendering failed (500)
//   - DATABASE_ERROR: storage backend failure (500)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the envelope for all error responses.
//
// Successful responses return the read shape directly (no envelope); only
// failures are wrapped:
//
//	{"error": {"code": "NOT_FOUND", "message": "User not found"}}
type ErrorResponse struct {
	Error *APIError `json:"error"`
}
