// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

// Package config loads and validates the Peakmap configuration.
//
// Configuration is loaded via Koanf v2 with layered sources, highest
// priority last:
//
//  1. Built-in defaults
//  2. Optional YAML config file (CONFIG_PATH or a default search path)
//  3. Environment variables
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for the Peakmap server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Access   AccessConfig   `koanf:"access"`
	GeoIP    GeoIPConfig    `koanf:"geoip"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	// Path is the DuckDB database file. Empty means in-memory, which is
	// what the test suite uses.
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// AccessConfig holds the geographic access gate settings.
type AccessConfig struct {
	// Enabled toggles the access gate entirely.
	Enabled bool `koanf:"enabled"`
	// AllowedCountry is the single ISO 3166-1 alpha-2 country code admitted
	// by the gate. Empty disables the gate.
	AllowedCountry string `koanf:"allowed_country"`
}

// GeoIPConfig holds the MaxMind country database settings.
type GeoIPConfig struct {
	Path string `koanf:"path"`
}

// APIConfig holds request handling settings.
type APIConfig struct {
	// DefaultLimit caps list responses when the caller does not supply one.
	DefaultLimit int `koanf:"default_limit"`
	// SeedEnabled exposes the /generate_data fixture endpoint.
	SeedEnabled bool `koanf:"seed_enabled"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks the configuration for inconsistent settings.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.API.DefaultLimit <= 0 {
		return fmt.Errorf("api.default_limit must be positive, got %d", c.API.DefaultLimit)
	}
	if c.Access.AllowedCountry != "" && len(c.Access.AllowedCountry) != 2 {
		return fmt.Errorf("access.allowed_country must be an ISO 3166-1 alpha-2 code, got %q", c.Access.AllowedCountry)
	}
	if c.Access.Enabled && c.Access.AllowedCountry != "" && c.GeoIP.Path == "" {
		return fmt.Errorf("geoip.path is required when the access gate is enabled")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// GateActive reports whether the country gate should run.
func (c *Config) GateActive() bool {
	return c.Access.Enabled && c.Access.AllowedCountry != ""
}
