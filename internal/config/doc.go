// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Package config loads and validates the Regiotrend configuration.

Configuration is layered with Koanf v2. Later layers override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file, from CONFIG_PATH or the first of DefaultConfigPaths
 3. Optional .env file (DOTENV_PATH, default ".env"), loaded into the process
    environment without overriding variables that are already set
 4. Environment variables mapped explicitly by envTransformFunc

Example config.yaml:

	dataset:
	  path: data_eurostat_clean.csv
	  reload_interval: 1m
	  default_year_min: 2010
	  default_year_max: 2022
	storage:
	  backend: duckdb
	  duckdb_path: /data/regiotrend.duckdb
	features:
	  map: true
	  stats: true
	  reset: true
	analytics:
	  zero_delta_direction: unchanged
	  narrative_locale: en

Equivalent environment overrides: DATASET_PATH, DATASET_RELOAD_INTERVAL,
DEFAULT_YEAR_MIN, STORAGE_BACKEND, DUCKDB_PATH, FEATURE_MAP, ZERO_DELTA_DIRECTION.
Unknown environment variables are ignored.

Load returns an error when Validate rejects the merged result, so a process
never starts with an inconsistent configuration.
*/
package config
