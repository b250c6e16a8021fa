// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package analytics

import (
	"math"

	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/models"
)

// ComputeGrowth returns the CAGR of every region in t, in percent.
//
// For a region with first observation (y0, v0) and last (y1, v1):
//
//	cagr = ((v1 / v0) ^ (1 / (y1 - y0)) - 1) * 100
//
// Intermediate observations do not affect the result. Regions with a single
// observation or a start value <= 0 are omitted.
func ComputeGrowth(t dataset.Table) map[string]models.GrowthResult {
	out := make(map[string]models.GrowthResult)

	for region, series := range t.GroupByRegion() {
		first, last := series[0], series[len(series)-1]
		span := last.Year - first.Year
		if first.Value <= 0 || span <= 0 {
			continue
		}

		cagr := (math.Pow(last.Value/first.Value, 1/float64(span)) - 1) * 100
		if math.IsNaN(cagr) || math.IsInf(cagr, 0) {
			continue
		}

		out[region] = models.GrowthResult{
			Region:      region,
			StartYear:   first.Year,
			EndYear:     last.Year,
			CAGRPercent: round2(cagr),
		}
	}

	return out
}
