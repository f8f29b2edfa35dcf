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
	"strings"
	"time"

	"github.com/tomtom215/peakmap/internal/metrics"
	"github.com/tomtom215/peakmap/internal/models"
)

// CreateUser persists a new user and returns it with its assigned id.
// Returns ErrEmailExists when the email unique constraint is violated.
func (db *DB) CreateUser(ctx context.Context, email, password string) (*models.User, error) {
	start := time.Now()

	user := &models.User{Email: email, Password: password, IsActive: true}
	err := db.conn.QueryRowContext(ctx,
		`INSERT INTO users (email, password) VALUES (?, ?) RETURNING id`,
		email, password,
	).Scan(&user.ID)
	metrics.RecordDBQuery("insert", "users", time.Since(start), err)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser returns the user with the given id, or ErrNotFound.
func (db *DB) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return db.getUserBy(ctx, `SELECT id, email, password, is_active FROM users WHERE id = ?`, id)
}

// GetUserByEmail returns the user with the given email, or ErrNotFound.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return db.getUserBy(ctx, `SELECT id, email, password, is_active FROM users WHERE email = ?`, email)
}

func (db *DB) getUserBy(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	start := time.Now()

	user := &models.User{}
	err := db.conn.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.Password, &user.IsActive)
	metrics.RecordDBQuery("select", "users", time.Since(start), err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

// ListUsers returns users ordered by id, skipping the first skip records and
// returning at most limit. The caller-supplied limit is not capped.
func (db *DB) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	start := time.Now()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, email, password, is_active FROM users ORDER BY id LIMIT ? OFFSET ?`,
		limit, skip,
	)
	metrics.RecordDBQuery("select", "users", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return users, nil
}

// GetOrCreateUser returns the user with the given email, creating it with
// the supplied password if absent. The insert races through the storage
// unique constraint (ON CONFLICT DO NOTHING), so concurrent callers converge
// on a single row. An existing user is returned unchanged even when the
// supplied password differs.
func (db *DB) GetOrCreateUser(ctx context.Context, email, password string) (*models.User, error) {
	start := time.Now()
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (email, password) VALUES (?, ?) ON CONFLICT (email) DO NOTHING`,
		email, password,
	)
	metrics.RecordDBQuery("insert", "users", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to get-or-create user: %w", err)
	}

	return db.GetUserByEmail(ctx, email)
}

// ListPeaksForUsers returns the peaks owned by each of the given users,
// keyed by owner id and ordered by peak id. This is the explicit
// join-on-demand used when serializing users; the owner relationship is
// never traversed anywhere else.
func (db *DB) ListPeaksForUsers(ctx context.Context, userIDs []int64) (map[int64][]models.Peak, error) {
	peaksByOwner := make(map[int64][]models.Peak, len(userIDs))
	if len(userIDs) == 0 {
		return peaksByOwner, nil
	}

	placeholders := make([]string, len(userIDs))
	args := make([]interface{}, len(userIDs))
	for i, id := range userIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(
		`SELECT id, name, lat, lon, owner_id FROM peaks WHERE owner_id IN (%s) ORDER BY id`,
		strings.Join(placeholders, ", "),
	)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("select", "peaks", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list peaks for users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Peak
		if err := rows.Scan(&p.ID, &p.Name, &p.Lat, &p.Lon, &p.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan peak row: %w", err)
		}
		peaksByOwner[p.OwnerID] = append(peaksByOwner[p.OwnerID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate peak rows: %w", err)
	}
	return peaksByOwner, nil
}
