// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Package analytics computes per-region growth, trend and summary statistics
over a dataset.Table.

Every function here is pure: it reads an immutable table and returns fresh
result values. Callers may run any number of computations concurrently.

# Operations

  - ComputeGrowth: compound annual growth rate between the first and last year
  - ComputeTrend: direction and size of the first-to-last change in a window
  - ComputeStats: mean, sample standard deviation, min and max
  - RegionAverages: per-region means positioned by a coordinate lookup
  - Analyze: all of the above for one query

# Rounding

Reported numbers are rounded half away from zero: growth, deltas and
statistics to 2 decimals, map averages to 1. Growth is computed from the
unrounded endpoints and rounded once.

# Degenerate Regions

A region whose growth is undefined (single observation, non-positive start
value) is absent from the growth mapping rather than reported as zero or an
error. The same applies to regions with no observation in a trend window.
*/
package analytics
