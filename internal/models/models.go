// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

// Package models defines the Peakmap entities and their API shapes.
//
// Each resource kind has a persisted entity (User, Peak), a create shape
// holding the fields a client supplies, and a read shape holding the fields
// returned to a client. Create shapes carry validation tags consumed by the
// validation package; read shapes are structural copies of persisted records
// and never fail to serialize.
package models

import "fmt"

// User is a registered user of the peak registry.
//
// The password is stored verbatim and never verified anywhere; there is no
// authentication in this system.
type User struct {
	ID       int64
	Email    string
	Password string
	IsActive bool
}

// Peak is a named geographic point owned by exactly one user.
type Peak struct {
	ID      int64
	Name    string
	Lat     float64
	Lon     float64
	OwnerID int64
}

// PeakWithOwner is a Peak joined with its owner's email, fetched on demand
// for map labels. The owner relationship is not modeled as a live object
// graph; this is the only place it is traversed.
type PeakWithOwner struct {
	Peak
	OwnerEmail string
}

// DisplayString returns the human-readable label shown on map markers.
func (p *PeakWithOwner) DisplayString() string {
	return fmt.Sprintf("%s peak located at %g,%g created by %s", p.Name, p.Lat, p.Lon, p.OwnerEmail)
}

// UserCreate is the payload for registering a user.
// Email format is deliberately not validated beyond being a string.
type UserCreate struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserRead is the shape returned for a user, with the owned peaks nested.
// Peaks defaults to an empty sequence, never null.
type UserRead struct {
	ID       int64      `json:"id"`
	Email    string     `json:"email"`
	IsActive bool       `json:"is_active"`
	Peaks    []PeakRead `json:"peaks"`
}

// PeakCreate is the payload for recording a peak.
type PeakCreate struct {
	Name string   `json:"name" validate:"required"`
	Lat  *float64 `json:"lat" validate:"required,latitude"`
	Lon  *float64 `json:"lon" validate:"required,longitude"`
}

// PeakRead is the shape returned for a peak.
type PeakRead struct {
	ID      int64   `json:"id"`
	OwnerID int64   `json:"owner_id"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// NewUserRead copies a persisted user and its peaks into the read shape.
func NewUserRead(u *User, peaks []Peak) UserRead {
	out := UserRead{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
		Peaks:    make([]PeakRead, 0, len(peaks)),
	}
	for i := range peaks {
		out.Peaks = append(out.Peaks, NewPeakRead(&peaks[i]))
	}
	return out
}

// NewPeakRead copies a persisted peak into the read shape.
func NewPeakRead(p *Peak) PeakRead {
	return PeakRead{
		ID:      p.ID,
		OwnerID: p.OwnerID,
		Name:    p.Name,
		Lat:     p.Lat,
		Lon:     p.Lon,
	}
}
