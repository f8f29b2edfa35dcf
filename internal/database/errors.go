// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package database

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the persistence layer. Handlers map these to
// HTTP status codes; anything else is a storage failure (5xx).
var (
	// ErrNotFound indicates a lookup by id or unique key found no record.
	ErrNotFound = errors.New("record not found")

	// ErrEmailExists indicates a user create hit the email unique constraint.
	ErrEmailExists = errors.New("email already registered")

	// ErrPeakNameExists indicates a peak create hit the name unique constraint.
	ErrPeakNameExists = errors.New("peak name already registered")

	// ErrOwnerNotFound indicates a peak create referenced a nonexistent user.
	// The foreign key constraint is the only owner existence check; handlers
	// do not pre-verify the owner.
	ErrOwnerNotFound = errors.New("owner user does not exist")
)

// isUniqueViolation reports whether err is a DuckDB unique constraint error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// isForeignKeyViolation reports whether err is a DuckDB foreign key error.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
