// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

// Package main is the entry point for the Peakmap server application.
//
// Peakmap is a small self-hosted service for recording named mountain peaks
// per user and viewing them on an interactive map. Access to the application
// endpoints can be restricted to a single country resolved from the caller
// IP via a MaxMind country database.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. GeoIP: Open the MaxMind country database when the access gate is active
//  3. Database: Initialize DuckDB and create the schema
//  4. HTTP Server: Chi router with map, user, and peak endpoints
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml)
//   - Built-in defaults
//
// Key environment variables:
//   - HTTP_HOST, HTTP_PORT: listen address (default 0.0.0.0:8571)
//   - DUCKDB_PATH: database file path (empty for in-memory)
//   - ACCESS_GATE_ENABLED, ALLOWED_COUNTRY: country access gate
//   - GEOIP_DB_PATH: MaxMind mmdb file used by the gate
//   - SEED_ENABLED: expose /generate_data demo fixtures
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes the geoip reader and database connection
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/peakmap/internal/api"
	"github.com/tomtom215/peakmap/internal/config"
	"github.com/tomtom215/peakmap/internal/database"
	"github.com/tomtom215/peakmap/internal/geoip"
	"github.com/tomtom215/peakmap/internal/logging"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Bool("access_gate", cfg.GateActive()).
		Bool("seed_enabled", cfg.API.SeedEnabled).
		Msg("Starting Peakmap")

	// Open the geoip database only when the gate is active. A configured
	// gate without a readable database is a hard error, never a silent
	// pass-through.
	var resolver geoip.Resolver
	if cfg.GateActive() {
		maxmind, err := geoip.Open(cfg.GeoIP.Path)
		if err != nil {
			logging.Fatal().Err(err).Str("path", cfg.GeoIP.Path).Msg("Failed to open geoip database")
		}
		resolver = maxmind
		defer func() {
			if err := maxmind.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing geoip database")
			}
		}()
		logging.Info().
			Str("path", cfg.GeoIP.Path).
			Str("allowed_country", cfg.Access.AllowedCountry).
			Msg("Country access gate enabled")
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	handler := api.NewHandler(db, cfg, resolver)
	router := api.NewRouter(handler, nil)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("Application stopped gracefully")
}
