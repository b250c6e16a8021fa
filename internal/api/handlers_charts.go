// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/regiotrend/internal/analytics"
	"github.com/tomtom215/regiotrend/internal/charts"
	"github.com/tomtom215/regiotrend/internal/metrics"
)

const pngContentType = "image/png"

// ChartTrends renders the selection as a PNG line chart.
func (h *Handler) ChartTrends(w http.ResponseWriter, r *http.Request) {
	req, ok := h.prepare(w, r)
	if !ok {
		return
	}

	start := time.Now()
	var buf bytes.Buffer
	err := charts.RenderTrends(&buf, req.filtered, charts.DefaultTrendOptions())
	metrics.ObserveAnalytics("chart_trends", time.Since(start))
	h.respondChart(w, r, buf.Bytes(), err)
}

// ChartMap renders the per-region averages as a PNG map scatter.
func (h *Handler) ChartMap(w http.ResponseWriter, r *http.Request) {
	if !h.config.Features.Map {
		respondFeatureDisabled(w, r, "map")
		return
	}
	req, ok := h.prepare(w, r)
	if !ok {
		return
	}

	start := time.Now()
	averages, _ := analytics.RegionAverages(req.filtered, h.geo)
	var buf bytes.Buffer
	err := charts.RenderMap(&buf, averages, h.geo.View(), charts.DefaultMapOptions())
	metrics.ObserveAnalytics("chart_map", time.Since(start))
	h.respondChart(w, r, buf.Bytes(), err)
}

func (h *Handler) respondChart(w http.ResponseWriter, r *http.Request, png []byte, err error) {
	switch {
	case errors.Is(err, charts.ErrNoData):
		respondError(w, r, http.StatusNotFound, CodeNotFound, "No observations match the selection", nil)
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Failed to render chart", err)
	default:
		w.Header().Set("Cache-Control", "no-cache")
		respondBinary(w, pngContentType, "", png)
	}
}
