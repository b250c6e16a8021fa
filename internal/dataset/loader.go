// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/tomtom215/regiotrend/internal/models"
)

// Required CSV columns. Any additional columns are ignored.
const (
	ColumnRegion = "Region"
	ColumnYear   = "Year"
	ColumnValue  = "Value"
)

// Load parses a CSV with a header row into a Table.
//
// Validation fails fast on the first problem: a missing required column, an
// empty region, a year that is not a non-negative integer, a missing,
// non-numeric or infinite value, or a duplicated (Region, Year) pair. A file
// holding only the header row loads as an empty Table.
func Load(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Table{}, fmt.Errorf("read dataset: %w", err)
	}

	header, hasRows, err := readHeader(data)
	if err != nil {
		return Table{}, err
	}
	if err := requireColumns(header); err != nil {
		return Table{}, err
	}
	if !hasRows {
		return Table{}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			ColumnRegion: series.String,
			ColumnYear:   series.Int,
			ColumnValue:  series.Float,
		}),
		dataframe.NaNValues([]string{"", "NA", "NaN", "nan", "<nil>"}),
	)
	if df.Err != nil {
		return Table{}, &SchemaError{Reason: df.Err.Error(), Err: ErrInvalidValue}
	}

	regions := df.Col(ColumnRegion)
	years := df.Col(ColumnYear)
	values := df.Col(ColumnValue)

	rows := make([]models.Observation, df.Nrow())
	for i := range rows {
		line := i + 2

		region := regions.Elem(i)
		if region.IsNA() || strings.TrimSpace(region.String()) == "" {
			return Table{}, &SchemaError{Line: line, Column: ColumnRegion, Reason: "region is empty", Err: ErrInvalidValue}
		}

		yearElem := years.Elem(i)
		if yearElem.IsNA() {
			return Table{}, &SchemaError{Line: line, Column: ColumnYear, Reason: "year is missing or not an integer", Err: ErrInvalidValue}
		}
		year, err := yearElem.Int()
		if err != nil {
			return Table{}, &SchemaError{Line: line, Column: ColumnYear, Reason: err.Error(), Err: ErrInvalidValue}
		}

		valueElem := values.Elem(i)
		if valueElem.IsNA() {
			return Table{}, &SchemaError{Line: line, Column: ColumnValue, Reason: "value is missing or not numeric", Err: ErrInvalidValue}
		}

		rows[i] = models.Observation{
			Region: region.String(),
			Year:   year,
			Value:  valueElem.Float(),
		}
	}

	return NewTable(rows)
}

// readHeader returns the header row and whether any record follows it.
// gota cannot build a frame without records, so this is checked up front.
func readHeader(data []byte) (header []string, hasRows bool, err error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1

	header, err = cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, false, &SchemaError{Reason: "file is empty, expected a header row", Err: ErrMissingColumn}
	}
	if err != nil {
		return nil, false, &SchemaError{Reason: err.Error(), Err: ErrInvalidValue}
	}

	_, err = cr.Read()
	return header, !errors.Is(err, io.EOF), nil
}

func requireColumns(header []string) error {
	for _, col := range []string{ColumnRegion, ColumnYear, ColumnValue} {
		if !slices.Contains(header, col) {
			return &SchemaError{Column: col, Reason: "column not found in header", Err: ErrMissingColumn}
		}
	}
	return nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return Table{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return Table{}, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}
