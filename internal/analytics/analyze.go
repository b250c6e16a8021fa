// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package analytics

import (
	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/models"
)

// Options selects what Analyze computes.
type Options struct {
	Trend    TrendOptions
	Narrator *Narrator

	// IncludeStats adds summary statistics to the report.
	IncludeStats bool

	// Locator adds the map layer when non-nil.
	Locator Locator
}

// Analyze filters t by q once and computes every enabled result on the
// filtered slice.
func Analyze(t dataset.Table, q models.Query, opts Options) models.DashboardReport {
	return AnalyzeFiltered(dataset.Filter(t, q), q, opts)
}

// AnalyzeFiltered is Analyze for a table that was already narrowed to q,
// for example by the DuckDB store.
func AnalyzeFiltered(filtered dataset.Table, q models.Query, opts Options) models.DashboardReport {
	narrator := opts.Narrator
	if narrator == nil {
		narrator = DefaultNarrator()
	}

	trends := trendsOf(filtered, opts.Trend)
	report := models.DashboardReport{
		Query:      q,
		Rows:       filtered.Len(),
		Growth:     ComputeGrowth(filtered),
		Trends:     trends,
		Narratives: narrator.NarrateAll(trends, q),
	}

	if opts.IncludeStats {
		report.Stats = ComputeStats(filtered)
	}
	if opts.Locator != nil {
		report.Map, report.Unpositioned = RegionAverages(filtered, opts.Locator)
		if report.Map == nil {
			report.Map = []models.RegionAverage{}
		}
	}

	return report
}
