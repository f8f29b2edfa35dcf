// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/peakmap/internal/config"
	"github.com/tomtom215/peakmap/internal/database"
	"github.com/tomtom215/peakmap/internal/geoip"
	"github.com/tomtom215/peakmap/internal/models"
)

// testDBMutex serializes database creation. Concurrent DuckDB CGO calls
// can hang under CI resource pressure.
var testDBMutex sync.Mutex

// testConfig returns a configuration suitable for handler tests. The
// access gate is disabled and demo seeding is enabled.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:    "127.0.0.1",
			Port:    8571,
			Timeout: 30 * time.Second,
		},
		Database: config.DatabaseConfig{
			Path:      ":memory:",
			MaxMemory: "1GB",
		},
		API: config.APIConfig{
			DefaultLimit: 100,
			SeedEnabled:  true,
		},
	}
}

// setupTestAPI creates an in-memory database and the full route tree over
// it. The returned database is also exposed for direct fixture setup.
func setupTestAPI(t *testing.T, cfg *config.Config, resolver geoip.Resolver) (*database.DB, http.Handler) {
	t.Helper()

	if cfg == nil {
		cfg = testConfig()
	}

	testDBMutex.Lock()
	db, err := database.New(&cfg.Database)
	testDBMutex.Unlock()
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	handler := NewHandler(db, cfg, resolver)
	router := NewRouter(handler, nil)
	return db, router.SetupChi()
}

// doJSON performs a request with an optional JSON body and returns the
// recorded response.
func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorded JSON response into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", rec.Body.String(), err)
	}
}

// decodeError unmarshals a recorded error envelope and returns its code.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope models.ErrorResponse
	decodeBody(t, rec, &envelope)
	if envelope.Error == nil {
		t.Fatalf("Expected error envelope, got %q", rec.Body.String())
	}
	return envelope.Error.Code
}
