// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package models

import (
	"time"
)

// APIResponse is the envelope used by every JSON endpoint.
//
// Status is "success" with Data populated, or "error" with Error populated.
//
//	{
//	  "status": "success",
//	  "data": {"growth": {"Norte": {"cagr_percent": 1.85}}},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 3}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and cache information for a response.
// DatasetVersion identifies the loaded dataset the result was computed from.
type Metadata struct {
	Timestamp      time.Time `json:"timestamp"`
	QueryTimeMS    int64     `json:"query_time_ms,omitempty"`
	Cached         bool      `json:"cached,omitempty"`
	DatasetVersion string    `json:"dataset_version,omitempty"`
}

// APIError is a machine-readable error payload.
//
// Codes in use: VALIDATION_ERROR, DATASET_UNAVAILABLE, FEATURE_DISABLED,
// NOT_FOUND, RATE_LIMIT_EXCEEDED, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RegionsResponse lists the regions present in the loaded dataset.
type RegionsResponse struct {
	Regions []string `json:"regions"`
	YearMin int      `json:"year_min"`
	YearMax int      `json:"year_max"`
	Rows    int      `json:"rows"`
	Source  string   `json:"source"`
	Version string   `json:"version"`
}

// GrowthResponse wraps the growth mapping for a query.
type GrowthResponse struct {
	Query  Query                   `json:"query"`
	Growth map[string]GrowthResult `json:"growth"`
}

// TrendsResponse wraps the trend mapping and its narratives.
type TrendsResponse struct {
	Query      Query                  `json:"query"`
	Trends     map[string]TrendResult `json:"trends"`
	Narratives []Narrative            `json:"narratives"`
}

// StatsResponse wraps the summary statistics mapping.
type StatsResponse struct {
	Query Query                   `json:"query"`
	Stats map[string]SummaryStats `json:"stats"`
}

// MapResponse carries region averages with the coordinate table version
// that positioned them.
type MapResponse struct {
	Query        Query           `json:"query"`
	GeoVersion   string          `json:"geo_version"`
	CenterLat    float64         `json:"center_latitude"`
	CenterLon    float64         `json:"center_longitude"`
	Zoom         float64         `json:"zoom"`
	RadiusM      float64         `json:"radius_m"`
	Averages     []RegionAverage `json:"averages"`
	Unpositioned []string        `json:"unpositioned,omitempty"`
}

// ReloadResponse reports the outcome of a forced dataset reload.
type ReloadResponse struct {
	Source   string    `json:"source"`
	Version  string    `json:"version"`
	Rows     int       `json:"rows"`
	LoadedAt time.Time `json:"loaded_at"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	DatasetLoaded bool    `json:"dataset_loaded"`
	Rows          int     `json:"rows"`
	Uptime        float64 `json:"uptime_seconds"`
}
