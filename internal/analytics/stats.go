// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package analytics

import (
	"github.com/go-gota/gota/series"

	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/models"
)

// ComputeStats returns mean, sample standard deviation, min and max of every
// region's values, rounded to 2 decimals. The standard deviation of a region
// with one observation is undefined.
func ComputeStats(t dataset.Table) map[string]models.SummaryStats {
	out := make(map[string]models.SummaryStats)

	for region, rows := range t.GroupByRegion() {
		values := valueSeries(rows)

		stats := models.SummaryStats{
			Region: region,
			Count:  values.Len(),
			Mean:   round2(values.Mean()),
			Min:    round2(values.Min()),
			Max:    round2(values.Max()),
		}
		if values.Len() > 1 {
			stats.StdDev = models.Float(round2(values.StdDev()))
		}

		out[region] = stats
	}

	return out
}

// valueSeries holds the observation values as a float series.
func valueSeries(rows []models.Observation) series.Series {
	values := make([]float64, len(rows))
	for i, obs := range rows {
		values[i] = obs.Value
	}
	return series.Floats(values)
}
