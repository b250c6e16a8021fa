// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Package database mirrors the loaded observation table into DuckDB and answers
dashboard filters in SQL.

The store is enabled with storage.backend=duckdb. Every successful dataset
load calls Replace, which swaps the table contents and the recorded source
identity inside one transaction. Filter then serves queries for snapshots
whose version matches the mirror; for any other snapshot (a failed Replace, or
a reload racing a request) it falls back to the in-memory filter so results
always correspond to the snapshot the caller holds.

Schema:

	observations(seq INTEGER, region VARCHAR, year INTEGER, value DOUBLE)
	dataset_meta(location VARCHAR, version VARCHAR, loaded_at TIMESTAMP, row_count INTEGER)

seq preserves table order so SQL results line up row for row with
dataset.Filter. (region, year) uniqueness is enforced by the loader.
*/
package database
