// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/tomtom215/regiotrend/internal/models"
)

// Table is an immutable collection of observations.
//
// The zero Table is empty and ready to use. Accessors return copies, so
// callers cannot mutate a Table after construction.
type Table struct {
	rows []models.Observation
}

// NewTable validates rows and builds a Table that keeps their order.
//
// Region names are normalised; empty regions, negative years, values that
// are not finite and duplicate (Region, Year) pairs are rejected with a
// *SchemaError.
func NewTable(rows []models.Observation) (Table, error) {
	out := make([]models.Observation, len(rows))
	seen := make(map[observationKey]int, len(rows))

	for i, obs := range rows {
		obs.Region = NormalizeRegion(obs.Region)
		if obs.Region == "" {
			return Table{}, &SchemaError{Line: i + 2, Column: ColumnRegion, Reason: "region is empty", Err: ErrInvalidValue}
		}
		if obs.Year < 0 {
			return Table{}, &SchemaError{Line: i + 2, Column: ColumnYear, Reason: fmt.Sprintf("negative year %d", obs.Year), Err: ErrInvalidValue}
		}
		if math.IsNaN(obs.Value) || math.IsInf(obs.Value, 0) {
			return Table{}, &SchemaError{Line: i + 2, Column: ColumnValue, Reason: fmt.Sprintf("value %v is not finite", obs.Value), Err: ErrInvalidValue}
		}
		key := observationKey{region: obs.Region, year: obs.Year}
		if first, dup := seen[key]; dup {
			return Table{}, &SchemaError{
				Line:   i + 2,
				Column: ColumnYear,
				Reason: fmt.Sprintf("%s %d already defined on line %d", obs.Region, obs.Year, first+2),
				Err:    ErrDuplicateObservation,
			}
		}
		seen[key] = i
		out[i] = obs
	}

	return Table{rows: out}, nil
}

type observationKey struct {
	region string
	year   int
}

// Len returns the number of observations.
func (t Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the observations in table order.
func (t Table) Rows() []models.Observation {
	return slices.Clone(t.rows)
}

// Regions returns the distinct region names in ascending order.
func (t Table) Regions() []string {
	set := make(map[string]struct{})
	for _, obs := range t.rows {
		set[obs.Region] = struct{}{}
	}
	regions := make([]string, 0, len(set))
	for r := range set {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// YearBounds returns the smallest and largest year in the table.
// ok is false for an empty table.
func (t Table) YearBounds() (minYear, maxYear int, ok bool) {
	if len(t.rows) == 0 {
		return 0, 0, false
	}
	minYear, maxYear = t.rows[0].Year, t.rows[0].Year
	for _, obs := range t.rows[1:] {
		minYear = min(minYear, obs.Year)
		maxYear = max(maxYear, obs.Year)
	}
	return minYear, maxYear, true
}

// Series returns one region's observations sorted by ascending year.
func (t Table) Series(region string) []models.Observation {
	region = NormalizeRegion(region)
	var series []models.Observation
	for _, obs := range t.rows {
		if obs.Region == region {
			series = append(series, obs)
		}
	}
	sortByYear(series)
	return series
}

// GroupByRegion returns every region's series, each sorted by ascending year.
func (t Table) GroupByRegion() map[string][]models.Observation {
	groups := make(map[string][]models.Observation)
	for _, obs := range t.rows {
		groups[obs.Region] = append(groups[obs.Region], obs)
	}
	for region := range groups {
		sortByYear(groups[region])
	}
	return groups
}

func sortByYear(series []models.Observation) {
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Year < series[j].Year
	})
}
