// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Package metrics provides Prometheus collectors for Regiotrend.

# Overview

The package exposes metrics for:
  - HTTP request latency, throughput and in-flight requests
  - Dataset loads (source, outcome, duration, row count)
  - Analytics computation latency per operation
  - Result cache efficiency
  - Circuit breaker state of remote dataset sources
  - DuckDB mirror query latency
  - WebSocket clients

All collectors are registered on the default registry through promauto and
served by promhttp at /metrics.

# Usage

	start := time.Now()
	table, err := dataset.Load(r)
	metrics.RecordDatasetLoad(src.String(), table.Len(), time.Since(start), err)
*/
package metrics
