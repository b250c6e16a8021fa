// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Package api serves the regional analytics over HTTP using the Chi router.

Every JSON endpoint answers with the models.APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": ..., "dataset_version": ...}}
	{"status": "error", "data": null, "error": {"code": "VALIDATION_ERROR", "message": ...}}

# Routes

	GET  /api/v1/health, /api/v1/health/live, /api/v1/health/ready
	GET  /api/v1/regions
	GET  /api/v1/dashboard/defaults          (feature: reset)
	GET  /api/v1/dashboard                   (reset=true uses the defaults)
	GET  /api/v1/analytics/growth
	GET  /api/v1/analytics/trends
	GET  /api/v1/analytics/stats             (feature: stats)
	GET  /api/v1/analytics/map               (feature: map)
	GET  /api/v1/charts/trends.png
	GET  /api/v1/charts/map.png              (feature: map)
	GET  /api/v1/export?format=csv|xlsx
	POST /api/v1/dataset/reload
	GET  /api/v1/ws
	GET  /metrics

# Query parameters

regions is comma separated and may be repeated; year_min and year_max are
inclusive. A parameter that is absent falls back to the dashboard defaults
(the first N regions in sorted order and the configured window clamped to
the data). An explicitly empty regions parameter selects nothing and
produces empty results, not an error.

# Caching

Analytics results are cached per endpoint, dataset version and query in a
TTL cache. The server clears the cache on every dataset reload; keying by
version keeps a response from outliving its table even between clears.

# Errors

	VALIDATION_ERROR     400  malformed or out-of-range parameters
	NOT_FOUND            404  unknown route, or nothing to draw
	FEATURE_DISABLED     404  endpoint switched off by configuration
	RATE_LIMIT_EXCEEDED  429
	DATASET_UNAVAILABLE  503  no table could be loaded
	INTERNAL_ERROR       500
*/
package api
