// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/peakmap/internal/metrics"
	"github.com/tomtom215/peakmap/internal/models"
)

// CreatePeak persists a new peak owned by the given user.
// Returns ErrPeakNameExists on a duplicate name and ErrOwnerNotFound when
// the owner id references no user; the foreign key constraint is the only
// owner existence check performed anywhere.
func (db *DB) CreatePeak(ctx context.Context, name string, lat, lon float64, ownerID int64) (*models.Peak, error) {
	start := time.Now()

	peak := &models.Peak{Name: name, Lat: lat, Lon: lon, OwnerID: ownerID}
	err := db.conn.QueryRowContext(ctx,
		`INSERT INTO peaks (name, lat, lon, owner_id) VALUES (?, ?, ?, ?) RETURNING id`,
		name, lat, lon, ownerID,
	).Scan(&peak.ID)
	metrics.RecordDBQuery("insert", "peaks", time.Since(start), err)

	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return nil, ErrOwnerNotFound
		case isUniqueViolation(err):
			return nil, ErrPeakNameExists
		}
		return nil, fmt.Errorf("failed to create peak: %w", err)
	}
	return peak, nil
}

// GetPeakByName returns the peak with the given name, or ErrNotFound.
func (db *DB) GetPeakByName(ctx context.Context, name string) (*models.Peak, error) {
	start := time.Now()

	peak := &models.Peak{}
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, name, lat, lon, owner_id FROM peaks WHERE name = ?`, name,
	).Scan(&peak.ID, &peak.Name, &peak.Lat, &peak.Lon, &peak.OwnerID)
	metrics.RecordDBQuery("select", "peaks", time.Since(start), err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query peak: %w", err)
	}
	return peak, nil
}

// ListPeaks returns peaks ordered by id, skipping the first skip records and
// returning at most limit. The caller-supplied limit is not capped.
func (db *DB) ListPeaks(ctx context.Context, skip, limit int) ([]models.Peak, error) {
	start := time.Now()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, lat, lon, owner_id FROM peaks ORDER BY id LIMIT ? OFFSET ?`,
		limit, skip,
	)
	metrics.RecordDBQuery("select", "peaks", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list peaks: %w", err)
	}
	defer rows.Close()

	peaks := make([]models.Peak, 0)
	for rows.Next() {
		var p models.Peak
		if err := rows.Scan(&p.ID, &p.Name, &p.Lat, &p.Lon, &p.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan peak row: %w", err)
		}
		peaks = append(peaks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate peak rows: %w", err)
	}
	return peaks, nil
}

// ListPeaksWithOwner returns every peak joined with its owner's email,
// ordered by peak id. This feeds the map page, whose marker labels include
// the creator.
func (db *DB) ListPeaksWithOwner(ctx context.Context) ([]models.PeakWithOwner, error) {
	start := time.Now()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT p.id, p.name, p.lat, p.lon, p.owner_id, u.email
		 FROM peaks p JOIN users u ON u.id = p.owner_id
		 ORDER BY p.id`,
	)
	metrics.RecordDBQuery("select", "peaks", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list peaks with owners: %w", err)
	}
	defer rows.Close()

	peaks := make([]models.PeakWithOwner, 0)
	for rows.Next() {
		var p models.PeakWithOwner
		if err := rows.Scan(&p.ID, &p.Name, &p.Lat, &p.Lon, &p.OwnerID, &p.OwnerEmail); err != nil {
			return nil, fmt.Errorf("failed to scan peak row: %w", err)
		}
		peaks = append(peaks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate peak rows: %w", err)
	}
	return peaks, nil
}

// GetOrCreatePeak returns the peak with the given name, creating it if
// absent. Like GetOrCreateUser, the name unique constraint makes the
// operation atomic; an existing peak is returned unchanged even when the
// supplied coordinates or owner differ.
func (db *DB) GetOrCreatePeak(ctx context.Context, name string, lat, lon float64, ownerID int64) (*models.Peak, error) {
	start := time.Now()
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO peaks (name, lat, lon, owner_id) VALUES (?, ?, ?, ?) ON CONFLICT (name) DO NOTHING`,
		name, lat, lon, ownerID,
	)
	metrics.RecordDBQuery("insert", "peaks", time.Since(start), err)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to get-or-create peak: %w", err)
	}

	return db.GetPeakByName(ctx, name)
}
