// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn indicates the CSV header lacks Region, Year or Value.
	ErrMissingColumn = errors.New("missing required column")

	// ErrInvalidValue indicates a cell that cannot be parsed as its column type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrDuplicateObservation indicates two rows share a (Region, Year) pair.
	ErrDuplicateObservation = errors.New("duplicate observation")

	// ErrNotLoaded is returned when no table has been loaded yet.
	ErrNotLoaded = errors.New("dataset not loaded")

	// ErrSourceUnavailable wraps failures to reach the dataset source.
	ErrSourceUnavailable = errors.New("dataset source unavailable")
)

// SchemaError describes why a dataset failed validation.
// Line is the 1-based CSV line number, or 0 when the error is not tied to a row.
type SchemaError struct {
	Line   int
	Column string
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("dataset schema: line %d, column %s: %s", e.Line, e.Column, e.Reason)
	}
	if e.Column != "" {
		return fmt.Sprintf("dataset schema: column %s: %s", e.Column, e.Reason)
	}
	return "dataset schema: " + e.Reason
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
