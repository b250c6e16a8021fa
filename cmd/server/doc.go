// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Command server runs the regiotrend HTTP API.

It serves growth, trend, statistics and map analytics over a CSV of
(Region, Year, Value) observations for Portuguese NUTS 2 regions, plus PNG
charts, CSV/XLSX export and a WebSocket feed of dataset reloads.

# Process layout

	RootSupervisor ("regiotrend")
	├── data-layer
	│   └── dataset-reloader (polls the source version every DATASET_RELOAD_INTERVAL)
	├── messaging-layer
	│   └── notification-hub (WebSocket dataset_reloaded broadcasts)
	└── api-layer
	    └── http-server

# Configuration

Settings come from built-in defaults, then config.yaml, then .env, then
the environment. The most common ones:

	DATASET_PATH            local CSV (default data_eurostat_clean.csv)
	DATASET_URL             remote CSV, overrides DATASET_PATH
	DATASET_RELOAD_INTERVAL 1m; 0 disables polling
	STORAGE_BACKEND         memory (default) or duckdb
	DUCKDB_PATH             DuckDB file when STORAGE_BACKEND=duckdb
	GEO_PATH                region coordinate YAML, embedded table when empty
	FEATURE_MAP / FEATURE_STATS / FEATURE_RESET
	HTTP_PORT               8080
	LOG_LEVEL / LOG_FORMAT

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains for up
to 10s, WebSocket clients receive a close frame and the DuckDB store is
checkpointed and closed.
*/
package main
