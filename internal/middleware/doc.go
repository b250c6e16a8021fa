// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Package middleware provides the HTTP middleware used by the API router.

  - RequestID: X-Request-ID propagation plus request and correlation IDs in
    the context for logging.Ctx
  - AccessLog: one structured log line per request, warning above a latency
    threshold
  - PrometheusMetrics: request count, latency and in-flight gauge labelled by
    chi route pattern
  - Compression: gzip for clients that accept it, bypassed for websocket
    upgrades

All middleware uses the http.HandlerFunc signature; the router adapts it to
chi with a small helper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
