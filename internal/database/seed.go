// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/peakmap/internal/logging"
)

// Demo fixture data served by the /generate_data endpoint.
var (
	demoUserEmail    = "frank@x.fr"
	demoUserPassword = "tfp"

	demoPeaks = []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"aneto", 42.6311, 0.657252},
		{"campbieil", 42.7923, 0.11978},
		{"montcalm", 42.6719, 1.40614},
	}
)

// SeedDemoData get-or-creates the demo user and its three demo peaks.
// Repeated calls leave exactly one demo user and three demo peaks; the
// storage unique constraints make each step idempotent.
func (db *DB) SeedDemoData(ctx context.Context) error {
	user, err := db.GetOrCreateUser(ctx, demoUserEmail, demoUserPassword)
	if err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	for _, p := range demoPeaks {
		if _, err := db.GetOrCreatePeak(ctx, p.name, p.lat, p.lon, user.ID); err != nil {
			return fmt.Errorf("failed to seed demo peak %s: %w", p.name, err)
		}
	}

	logging.Ctx(ctx).Info().Str("user", demoUserEmail).Int("peaks", len(demoPeaks)).Msg("Demo data seeded")
	return nil
}
