// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/regiotrend/internal/cache"
	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/metrics"
	"github.com/tomtom215/regiotrend/internal/models"
)

// analyticsFunc computes an endpoint's payload from the filtered table.
type analyticsFunc func(filtered dataset.Table, q models.Query) interface{}

// analyticsCacheKey identifies one cached result.
type analyticsCacheKey struct {
	Version string       `json:"version"`
	Query   models.Query `json:"query"`
}

// filteredRequest is the decoded, validated and filtered input of an
// analytics or rendering endpoint.
type filteredRequest struct {
	snap     dataset.Snapshot
	query    models.Query
	filtered dataset.Table
}

// prepare loads the dataset, decodes the filter (with reset support) and
// narrows the table. ok is false once an error response has been written.
func (h *Handler) prepare(w http.ResponseWriter, r *http.Request) (filteredRequest, bool) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return filteredRequest{}, false
	}

	q, ok := h.decodeQuery(w, r, snap.Table)
	if !ok {
		return filteredRequest{}, false
	}

	filtered, err := h.filterer.Filter(r.Context(), snap, q)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Failed to filter observations", err)
		return filteredRequest{}, false
	}
	return filteredRequest{snap: snap, query: q, filtered: filtered}, true
}

// decodeQuery applies reset=true or the query parameters over the defaults.
func (h *Handler) decodeQuery(w http.ResponseWriter, r *http.Request, t dataset.Table) (models.Query, bool) {
	defaults := h.defaultQuery(t)
	if isTrue(r.URL.Query(), "reset") {
		if !h.config.Features.Reset {
			respondFeatureDisabled(w, r, "reset")
			return models.Query{}, false
		}
		return defaults, true
	}

	req, ok := parseAnalyticsRequest(w, r, defaults)
	if !ok {
		return models.Query{}, false
	}
	return req.Query(), true
}

// executeAnalytics runs the cache-first flow shared by the JSON analytics
// endpoints: decode, look up the result cache, filter, compute, store.
func (h *Handler) executeAnalytics(w http.ResponseWriter, r *http.Request, name string, fn analyticsFunc) {
	start := time.Now()

	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	q, ok := h.decodeQuery(w, r, snap.Table)
	if !ok {
		return
	}

	key := cache.GenerateKey(name, analyticsCacheKey{Version: snap.Identity.Version, Query: q})
	if h.cache != nil {
		if cached, found := h.cache.Get(key); found {
			respondSuccess(w, r, cached, models.Metadata{
				Cached:         true,
				DatasetVersion: snap.Identity.Version,
			})
			return
		}
	}

	filtered, err := h.filterer.Filter(r.Context(), snap, q)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Failed to filter observations", err)
		return
	}

	computeStart := time.Now()
	data := fn(filtered, q)
	metrics.ObserveAnalytics(name, time.Since(computeStart))

	if h.cache != nil {
		h.cache.Set(key, data)
	}

	respondSuccess(w, r, data, models.Metadata{
		QueryTimeMS:    time.Since(start).Milliseconds(),
		DatasetVersion: snap.Identity.Version,
	})
}
