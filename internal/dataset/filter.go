// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"context"

	"github.com/tomtom215/regiotrend/internal/models"
)

// Filterer narrows a loaded snapshot to a query. MemoryFilter works on the
// snapshot's own rows; the DuckDB store answers the same query in SQL.
type Filterer interface {
	Filter(ctx context.Context, snap Snapshot, q models.Query) (Table, error)
}

// MemoryFilter is the in-process Filterer.
type MemoryFilter struct{}

// Filter implements Filterer.
func (MemoryFilter) Filter(_ context.Context, snap Snapshot, q models.Query) (Table, error) {
	return Filter(snap.Table, q), nil
}

// Filter returns the observations whose region is in q.Regions and whose year
// lies in [q.YearMin, q.YearMax], in table order.
//
// An inverted window or an empty region set yields an empty Table. Filter
// does not validate q; call q.Validate first when the query comes from a user.
func Filter(t Table, q models.Query) Table {
	if q.EmptyWindow() || len(q.Regions) == 0 {
		return Table{}
	}

	wanted := make(map[string]struct{}, len(q.Regions))
	for _, r := range NormalizeRegions(q.Regions) {
		wanted[r] = struct{}{}
	}

	var out []models.Observation
	for _, obs := range t.rows {
		if obs.Year < q.YearMin || obs.Year > q.YearMax {
			continue
		}
		if _, ok := wanted[obs.Region]; ok {
			out = append(out, obs)
		}
	}
	return Table{rows: out}
}

// DefaultQuery builds the dashboard's initial selection: the first count
// regions in sorted order and the configured window clamped to the table's
// year bounds. A window entirely outside the data is returned unclamped.
func DefaultQuery(t Table, count, yearMin, yearMax int) models.Query {
	regions := t.Regions()
	if count >= 0 && count < len(regions) {
		regions = regions[:count]
	}

	q := models.Query{Regions: regions, YearMin: yearMin, YearMax: yearMax}
	lo, hi, ok := t.YearBounds()
	if !ok || yearMax < lo || yearMin > hi {
		return q
	}
	q.YearMin = max(yearMin, lo)
	q.YearMax = min(yearMax, hi)
	return q
}
