// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package validation

import (
	"strings"
	"testing"
)

type userPayload struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type peakPayload struct {
	Name string   `validate:"required"`
	Lat  *float64 `validate:"required,latitude"`
	Lon  *float64 `validate:"required,longitude"`
}

func floatPtr(f float64) *float64 { return &f }

func TestValidateStructValid(t *testing.T) {
	payload := &peakPayload{
		Name: "aneto",
		Lat:  floatPtr(42.6311),
		Lon:  floatPtr(0.657252),
	}
	if err := ValidateStruct(payload); err != nil {
		t.Errorf("Expected valid payload, got %v", err)
	}
}

func TestValidateStructMissingFields(t *testing.T) {
	err := ValidateStruct(&userPayload{})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Errorf("Expected 2 field errors, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected VALIDATION_ERROR, got %s", apiErr.Code)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("Expected per-field details for multiple errors")
	}
}

func TestValidateStructSingleError(t *testing.T) {
	err := ValidateStruct(&userPayload{Email: "a@x.fr"})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Details["field"] != "Password" {
		t.Errorf("Expected field Password, got %v", apiErr.Details["field"])
	}
	if !strings.Contains(apiErr.Message, "required") {
		t.Errorf("Expected message to mention required, got %q", apiErr.Message)
	}
}

func TestValidateStructCoordinateRanges(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{"valid", 42.6311, 0.657252, false},
		{"lat too high", 90.1, 0, true},
		{"lat too low", -90.1, 0, true},
		{"lon too high", 0, 180.1, true},
		{"lon too low", 0, -180.1, true},
		{"lat boundary", 90, 0, false},
		{"lon boundary", 0, -180, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&peakPayload{
				Name: "p",
				Lat:  floatPtr(tt.lat),
				Lon:  floatPtr(tt.lon),
			})
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected valid payload, got %v", err)
			}
		})
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("Expected the same validator instance")
	}
}
