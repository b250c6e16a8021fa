// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Package dataset loads, holds, filters and exports the regional observation table.

# Overview

  - Table: immutable, validated collection of observations
  - Load: CSV parsing with typed columns and fail-fast schema validation
  - Filter: region and inclusive year window selection
  - Source: where the CSV comes from (local file or HTTP URL)
  - Cache: memoises the Table per source identity with explicit invalidation
  - WriteCSV, WriteXLSX: export of a (filtered) table

# Source Identity

A FileSource is identified by its path, modification time and size; an
HTTPSource by its URL and ETag (or Last-Modified). The Cache reloads only when
that identity changes or after Invalidate is called, so edits to the file on
disk are picked up on the next access without restarting the process.

	src := dataset.NewFileSource("data_eurostat_clean.csv")
	cache := dataset.NewCache(src)
	table, err := cache.Get(ctx)
	filtered := dataset.Filter(table, models.Query{
	    Regions: []string{"Norte", "Algarve"},
	    YearMin: 2010,
	    YearMax: 2022,
	})

# Region Names

Region names are normalised to Unicode NFC on load and on lookup, so
"Área Metropolitana de Lisboa" matches whether the accent was written as a
precomposed or combining character.
*/
package dataset
