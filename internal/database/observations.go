// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/logging"
	"github.com/tomtom215/regiotrend/internal/metrics"
	"github.com/tomtom215/regiotrend/internal/models"
)

// Version returns the source version currently mirrored, or "" when empty.
func (db *DB) Version() string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.version
}

// Replace swaps the mirrored rows for snap in a single transaction.
// It is a no-op when snap's identity is already mirrored.
func (db *DB) Replace(ctx context.Context, snap dataset.Snapshot) (err error) {
	if db.isClosed() {
		return ErrClosed
	}

	db.mu.RLock()
	same := db.version != "" && db.version == snap.Identity.Version && db.location == snap.Identity.Location
	db.mu.RUnlock()
	if same {
		return nil
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("replace", time.Since(start), err) }()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() // original error wins
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM observations`); err != nil {
		return fmt.Errorf("clear observations: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM dataset_meta`); err != nil {
		return fmt.Errorf("clear dataset_meta: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO observations (seq, region, year, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	rows := snap.Table.Rows()
	for i, obs := range rows {
		if _, err = stmt.ExecContext(ctx, i, obs.Region, obs.Year, obs.Value); err != nil {
			return fmt.Errorf("insert observation %d: %w", i, err)
		}
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO dataset_meta (location, version, loaded_at, row_count) VALUES (?, ?, ?, ?)`,
		snap.Identity.Location, snap.Identity.Version, snap.LoadedAt.UTC(), len(rows)); err != nil {
		return fmt.Errorf("record dataset_meta: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}

	db.mu.Lock()
	db.location, db.version = snap.Identity.Location, snap.Identity.Version
	db.mu.Unlock()

	logging.Ctx(ctx).Info().Str("version", snap.Identity.Version).Int("rows", len(rows)).
		Dur("duration", time.Since(start)).Msg("DuckDB mirror replaced")
	return nil
}

// Observations returns the mirrored rows matching q in table order.
// An inverted window or empty region set returns no rows without querying.
func (db *DB) Observations(ctx context.Context, q models.Query) (_ []models.Observation, err error) {
	if db.isClosed() {
		return nil, ErrClosed
	}
	regions := dataset.NormalizeRegions(q.Regions)
	if q.EmptyWindow() || len(regions) == 0 {
		return nil, nil
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("observations", time.Since(start), err) }()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(regions)), ", ")
	query := `SELECT region, year, value FROM observations
		WHERE region IN (` + placeholders + `) AND year BETWEEN ? AND ?
		ORDER BY seq`

	args := make([]interface{}, 0, len(regions)+2)
	for _, r := range regions {
		args = append(args, r)
	}
	args = append(args, q.YearMin, q.YearMax)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query observations: %w", err)
	}
	defer closeQuietly(rows)

	var out []models.Observation
	for rows.Next() {
		var obs models.Observation
		if err = rows.Scan(&obs.Region, &obs.Year, &obs.Value); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		out = append(out, obs)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate observations: %w", err)
	}
	return out, nil
}

// Filter implements dataset.Filterer. Snapshots that are not the mirrored
// version are filtered in memory.
func (db *DB) Filter(ctx context.Context, snap dataset.Snapshot, q models.Query) (dataset.Table, error) {
	if db.Version() != snap.Identity.Version {
		logging.Ctx(ctx).Debug().Str("mirrored", db.Version()).Str("requested", snap.Identity.Version).
			Msg("DuckDB mirror stale, filtering in memory")
		return dataset.Filter(snap.Table, q), nil
	}

	rows, err := db.Observations(ctx, q)
	if err != nil {
		return dataset.Table{}, err
	}
	return dataset.NewTable(rows)
}

// Count returns the number of mirrored observations.
func (db *DB) Count(ctx context.Context) (n int, err error) {
	if db.isClosed() {
		return 0, ErrClosed
	}
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("count", time.Since(start), err) }()

	if err = db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM observations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count observations: %w", err)
	}
	return n, nil
}

// Regions returns the distinct mirrored region names, sorted.
func (db *DB) Regions(ctx context.Context) (_ []string, err error) {
	if db.isClosed() {
		return nil, ErrClosed
	}
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("regions", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, `SELECT DISTINCT region FROM observations ORDER BY region`)
	if err != nil {
		return nil, fmt.Errorf("query regions: %w", err)
	}
	defer closeQuietly(rows)

	var out []string
	for rows.Next() {
		var r string
		if err = rows.Scan(&r); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
