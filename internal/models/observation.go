// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package models

import "errors"

// ErrNegativeYear is returned when a query names a year below zero.
var ErrNegativeYear = errors.New("year must not be negative")

// Observation is one row of the regional dataset.
//
// Value is a dimensionless economic index, so arithmetic on it is plain
// floating point with no unit conversion.
type Observation struct {
	Region string  `json:"region"`
	Year   int     `json:"year"`
	Value  float64 `json:"value"`
}

// Query selects observations by region membership and an inclusive year window.
//
// A window with YearMin > YearMax is legal and selects nothing.
type Query struct {
	Regions []string `json:"regions"`
	YearMin int      `json:"year_min"`
	YearMax int      `json:"year_max"`
}

// Validate reports precondition violations. An inverted window is not one.
func (q Query) Validate() error {
	if q.YearMin < 0 || q.YearMax < 0 {
		return ErrNegativeYear
	}
	return nil
}

// EmptyWindow reports whether the year window cannot match any observation.
func (q Query) EmptyWindow() bool {
	return q.YearMin > q.YearMax
}
