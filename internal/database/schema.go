// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS observations (
		seq    INTEGER NOT NULL,
		region VARCHAR NOT NULL,
		year   INTEGER NOT NULL,
		value  DOUBLE  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dataset_meta (
		location  VARCHAR   NOT NULL,
		version   VARCHAR   NOT NULL,
		loaded_at TIMESTAMP NOT NULL,
		row_count INTEGER   NOT NULL
	)`,
}

// createTables creates the mirror schema if it does not exist.
func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// loadIdentity restores the identity recorded by the last Replace, so a
// persistent database that already mirrors the current file is reused.
func (db *DB) loadIdentity(ctx context.Context) error {
	var location, version string
	err := db.conn.QueryRowContext(ctx,
		`SELECT location, version FROM dataset_meta LIMIT 1`).Scan(&location, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	db.mu.Lock()
	db.location, db.version = location, version
	db.mu.Unlock()
	return nil
}
