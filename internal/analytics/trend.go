// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package analytics

import (
	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/models"
)

// TrendOptions controls trend classification.
type TrendOptions struct {
	// ZeroDeltaAsDecreased classifies a rounded delta of exactly zero as
	// decreased instead of unchanged. The first dashboards behaved this way.
	ZeroDeltaAsDecreased bool
}

// ComputeTrend classifies the first-to-last change of each requested region
// within [yearMin, yearMax]. Regions without observations in the window are
// omitted; a region with one observation has a zero delta.
func ComputeTrend(t dataset.Table, regions []string, yearMin, yearMax int, opts TrendOptions) map[string]models.TrendResult {
	filtered := dataset.Filter(t, models.Query{Regions: regions, YearMin: yearMin, YearMax: yearMax})
	return trendsOf(filtered, opts)
}

// trendsOf computes trends for every region of an already filtered table.
func trendsOf(filtered dataset.Table, opts TrendOptions) map[string]models.TrendResult {
	out := make(map[string]models.TrendResult)

	for region, series := range filtered.GroupByRegion() {
		first, last := series[0], series[len(series)-1]
		delta := round2(last.Value - first.Value)

		out[region] = models.TrendResult{
			Region:     region,
			StartYear:  first.Year,
			EndYear:    last.Year,
			StartValue: first.Value,
			EndValue:   last.Value,
			Delta:      delta,
			Direction:  classify(delta, opts),
		}
	}

	return out
}

func classify(delta float64, opts TrendOptions) models.Direction {
	switch {
	case delta > 0:
		return models.DirectionIncreased
	case delta < 0:
		return models.DirectionDecreased
	case opts.ZeroDeltaAsDecreased:
		return models.DirectionDecreased
	default:
		return models.DirectionUnchanged
	}
}
