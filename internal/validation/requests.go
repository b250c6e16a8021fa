// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package validation

import "github.com/tomtom215/regiotrend/internal/models"

// Request limits shared by all analytics endpoints.
const (
	MaxRegions = 64
	MinYear    = 0
	MaxYear    = 9999
)

// AnalyticsRequest is the decoded filter of every analytics endpoint.
// An inverted window is valid and yields empty results.
type AnalyticsRequest struct {
	Regions []string `query:"regions" validate:"max=64,dive,region"`
	YearMin int      `query:"year_min" validate:"gte=0,lte=9999"`
	YearMax int      `query:"year_max" validate:"gte=0,lte=9999"`
}

// Query converts the request into the analytics filter.
func (r AnalyticsRequest) Query() models.Query {
	return models.Query{
		Regions: r.Regions,
		YearMin: r.YearMin,
		YearMax: r.YearMax,
	}
}

// ExportRequest is an AnalyticsRequest plus the download format.
type ExportRequest struct {
	AnalyticsRequest
	Format string `query:"format" validate:"oneof=csv xlsx"`
}
