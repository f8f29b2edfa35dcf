// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDisplayString(t *testing.T) {
	p := &PeakWithOwner{
		Peak:       Peak{Name: "aneto", Lat: 42.6311, Lon: 0.657252},
		OwnerEmail: "frank@x.fr",
	}
	want := "aneto peak located at 42.6311,0.657252 created by frank@x.fr"
	if got := p.DisplayString(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestDisplayStringWholeNumbers(t *testing.T) {
	// %g drops trailing zeros, so whole coordinates render without decimals.
	p := &PeakWithOwner{
		Peak:       Peak{Name: "null island", Lat: 0, Lon: 0},
		OwnerEmail: "a@x.fr",
	}
	want := "null island peak located at 0,0 created by a@x.fr"
	if got := p.DisplayString(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNewUserRead(t *testing.T) {
	u := &User{ID: 1, Email: "a@x.fr", Password: "secret", IsActive: true}
	peaks := []Peak{{ID: 2, Name: "aneto", Lat: 42.6311, Lon: 0.657252, OwnerID: 1}}

	out := NewUserRead(u, peaks)
	if out.ID != 1 || out.Email != "a@x.fr" || !out.IsActive {
		t.Errorf("Unexpected user read %+v", out)
	}
	if len(out.Peaks) != 1 || out.Peaks[0].Name != "aneto" {
		t.Errorf("Unexpected nested peaks %+v", out.Peaks)
	}
}

func TestNewUserReadNilPeaks(t *testing.T) {
	u := &User{ID: 1, Email: "a@x.fr"}
	out := NewUserRead(u, nil)
	if out.Peaks == nil {
		t.Fatal("Expected non-nil peaks slice")
	}

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"peaks":[]`) {
		t.Errorf("Expected peaks to serialize as [], got %s", data)
	}
}

func TestUserReadOmitsPassword(t *testing.T) {
	u := &User{ID: 1, Email: "a@x.fr", Password: "secret", IsActive: true}
	data, err := json.Marshal(NewUserRead(u, nil))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Errorf("Serialized user leaked the password: %s", data)
	}
}
