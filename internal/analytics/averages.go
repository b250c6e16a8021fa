// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package analytics

import (
	"sort"

	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/models"
)

// Locator resolves a region name to map coordinates.
type Locator interface {
	Locate(region string) (lat, lon float64, ok bool)
}

// RegionAverages returns each region's mean value rounded to 1 decimal,
// positioned by loc and sorted by region name. Regions loc cannot place are
// returned separately, also sorted.
func RegionAverages(t dataset.Table, loc Locator) (positioned []models.RegionAverage, unpositioned []string) {
	for region, rows := range t.GroupByRegion() {
		lat, lon, ok := loc.Locate(region)
		if !ok {
			unpositioned = append(unpositioned, region)
			continue
		}

		positioned = append(positioned, models.RegionAverage{
			Region:    region,
			Mean:      Round(valueSeries(rows).Mean(), 1),
			Latitude:  lat,
			Longitude: lon,
		})
	}

	sort.Slice(positioned, func(i, j int) bool { return positioned[i].Region < positioned[j].Region })
	sort.Strings(unpositioned)
	return positioned, unpositioned
}
