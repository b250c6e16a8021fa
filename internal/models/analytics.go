// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package models

import (
	"strconv"
)

// Direction classifies the change between the first and last observation
// of a region inside the selected window.
type Direction string

const (
	DirectionIncreased Direction = "increased"
	DirectionDecreased Direction = "decreased"
	DirectionUnchanged Direction = "unchanged"
)

// GrowthResult holds the compound annual growth rate of one region.
// Regions whose growth is undefined have no GrowthResult at all.
type GrowthResult struct {
	Region      string  `json:"region"`
	StartYear   int     `json:"start_year"`
	EndYear     int     `json:"end_year"`
	CAGRPercent float64 `json:"cagr_percent"`
}

// TrendResult describes the first-to-last change of one region.
type TrendResult struct {
	Region     string    `json:"region"`
	StartYear  int       `json:"start_year"`
	EndYear    int       `json:"end_year"`
	StartValue float64   `json:"start_value"`
	EndValue   float64   `json:"end_value"`
	Delta      float64   `json:"delta"`
	Direction  Direction `json:"direction"`
}

// NullableFloat is a float64 that may be undefined. Undefined values encode
// as JSON null rather than zero.
type NullableFloat struct {
	Value float64
	Valid bool
}

// Float returns a defined NullableFloat.
func Float(v float64) NullableFloat {
	return NullableFloat{Value: v, Valid: true}
}

// MarshalJSON implements json.Marshaler.
func (n NullableFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, n.Value, 'f', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullableFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullableFloat{}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = Float(v)
	return nil
}

// String renders the value, or "n/a" when undefined.
func (n NullableFloat) String() string {
	if !n.Valid {
		return "n/a"
	}
	return strconv.FormatFloat(n.Value, 'f', 2, 64)
}

// SummaryStats holds descriptive statistics of one region's values.
// StdDev is the sample standard deviation and is undefined for a single
// observation.
type SummaryStats struct {
	Region string        `json:"region"`
	Count  int           `json:"count"`
	Mean   float64       `json:"mean"`
	StdDev NullableFloat `json:"std_dev"`
	Min    float64       `json:"min"`
	Max    float64       `json:"max"`
}

// RegionAverage is the mean value of a region positioned for the map layer.
type RegionAverage struct {
	Region    string  `json:"region"`
	Mean      float64 `json:"mean"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Narrative is the one-sentence interpretation of a region's trend.
type Narrative struct {
	Region    string    `json:"region"`
	Direction Direction `json:"direction"`
	Text      string    `json:"text"`
}

// DashboardReport bundles every result computed for one query.
// Stats and Map are nil when their feature is switched off. Unpositioned
// lists selected regions the coordinate table cannot place on the map.
type DashboardReport struct {
	Query        Query                   `json:"query"`
	Rows         int                     `json:"rows"`
	Growth       map[string]GrowthResult `json:"growth"`
	Trends       map[string]TrendResult  `json:"trends"`
	Narratives   []Narrative             `json:"narratives"`
	Stats        map[string]SummaryStats `json:"stats,omitempty"`
	Map          []RegionAverage         `json:"map,omitempty"`
	Unpositioned []string                `json:"unpositioned,omitempty"`
}
