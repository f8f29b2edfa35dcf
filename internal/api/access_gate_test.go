// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/peakmap/internal/config"
	"github.com/tomtom215/peakmap/internal/geoip"
)

func gatedConfig() *config.Config {
	cfg := testConfig()
	cfg.Access = config.AccessConfig{
		Enabled:        true,
		AllowedCountry: "FR",
	}
	cfg.GeoIP.Path = "/nonexistent.mmdb" // unused, tests inject a static resolver
	return cfg
}

func gateRequest(t *testing.T, h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/peaks/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCountryGateAllowsConfiguredCountry(t *testing.T) {
	resolver := geoip.NewStaticResolver(map[string]string{
		"198.51.100.7": "FR",
	})
	_, h := setupTestAPI(t, gatedConfig(), resolver)

	rec := gateRequest(t, h, "198.51.100.7:4242")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 for allowed country, got %d", rec.Code)
	}
}

func TestCountryGateRejectsOtherCountry(t *testing.T) {
	resolver := geoip.NewStaticResolver(map[string]string{
		"203.0.113.5": "US",
	})
	_, h := setupTestAPI(t, gatedConfig(), resolver)

	rec := gateRequest(t, h, "203.0.113.5:4242")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected 403 for disallowed country, got %d", rec.Code)
	}
	if code := decodeError(t, rec); code != "ACCESS_DENIED" {
		t.Errorf("Expected ACCESS_DENIED, got %s", code)
	}
}

func TestCountryGateCaseInsensitiveMatch(t *testing.T) {
	resolver := geoip.NewStaticResolver(map[string]string{
		"198.51.100.7": "fr",
	})
	_, h := setupTestAPI(t, gatedConfig(), resolver)

	rec := gateRequest(t, h, "198.51.100.7:4242")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 for case-insensitive match, got %d", rec.Code)
	}
}

func TestCountryGateFailsOpenForUnknownAddress(t *testing.T) {
	// Resolver knows nothing; private and unlisted addresses pass through.
	resolver := geoip.NewStaticResolver(nil)
	_, h := setupTestAPI(t, gatedConfig(), resolver)

	rec := gateRequest(t, h, "192.168.1.10:4242")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 for unknown address, got %d", rec.Code)
	}
}

func TestCountryGateDisabled(t *testing.T) {
	// Gate disabled via configuration even with a resolver present.
	cfg := testConfig()
	resolver := geoip.NewStaticResolver(map[string]string{
		"203.0.113.5": "US",
	})
	_, h := setupTestAPI(t, cfg, resolver)

	rec := gateRequest(t, h, "203.0.113.5:4242")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 with gate disabled, got %d", rec.Code)
	}
}

func TestCountryGateNilResolver(t *testing.T) {
	_, h := setupTestAPI(t, gatedConfig(), nil)

	rec := gateRequest(t, h, "203.0.113.5:4242")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 with nil resolver, got %d", rec.Code)
	}
}

func TestCountryGateSkipsHealthAndMetrics(t *testing.T) {
	resolver := geoip.NewStaticResolver(map[string]string{
		"203.0.113.5": "US",
	})
	_, h := setupTestAPI(t, gatedConfig(), resolver)

	for _, path := range []string{"/healthz", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "203.0.113.5:4242"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200 for ungated %s, got %d", path, rec.Code)
		}
	}
}

func TestCountryGateCoversAllApplicationRoutes(t *testing.T) {
	resolver := geoip.NewStaticResolver(map[string]string{
		"203.0.113.5": "US",
	})
	_, h := setupTestAPI(t, gatedConfig(), resolver)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/generate_data"},
		{http.MethodPost, "/users/"},
		{http.MethodGet, "/users/"},
		{http.MethodGet, "/users/1"},
		{http.MethodPost, "/users/1/peaks/"},
		{http.MethodGet, "/peaks/"},
	}

	for _, rt := range routes {
		req := httptest.NewRequest(rt.method, rt.path, nil)
		req.RemoteAddr = "203.0.113.5:4242"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("Expected 403 for %s %s, got %d", rt.method, rt.path, rec.Code)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{"host and port", "203.0.113.5:4242", "203.0.113.5"},
		{"bare host", "203.0.113.5", "203.0.113.5"},
		{"ipv6 with port", "[2001:db8::1]:4242", "2001:db8::1"},
		{"garbage", "not-an-address", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			ip := clientIP(req)
			if tt.want == "" {
				if ip != nil {
					t.Errorf("Expected nil IP, got %v", ip)
				}
				return
			}
			if ip == nil || ip.String() != tt.want {
				t.Errorf("Expected %s, got %v", tt.want, ip)
			}
		})
	}
}
