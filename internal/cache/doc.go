// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Package cache provides the thread-safe TTL cache that sits in front of the
analytics endpoints.

Results are keyed by endpoint name plus a hash of the normalized query and
the dataset version that produced them, so a reload never serves a report
computed from an older table even before Clear runs:

	key := cache.GenerateKey("analytics:growth", struct {
	    Query   models.Query
	    Version string
	}{q, snap.Identity.Version})

	if cached, ok := c.Get(key); ok {
	    return cached.(models.GrowthResponse)
	}

The server clears the whole cache from the dataset reload hook. Expired
entries are removed lazily on Get and by a background sweep that stops when
Close is called.

Hits and misses are exported through internal/metrics as
result_cache_hits_total and result_cache_misses_total.
*/
package cache
