// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Package models defines the data structures shared across Regiotrend.

Key Components:

  - Observation: one (Region, Year, Value) measurement from the dataset
  - Query: the region set and inclusive year window a client asks about
  - GrowthResult, TrendResult, SummaryStats: per-region analytics results
  - RegionAverage: a region mean positioned on the map
  - DashboardReport: every result for one query bundled together
  - APIResponse: standardized API response envelope

Results are plain values. Every query produces a fresh set computed from the
loaded table; nothing here is mutated after construction.
*/
package models
