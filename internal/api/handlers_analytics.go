// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"net/http"

	"github.com/tomtom215/regiotrend/internal/analytics"
	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/models"
)

// Dashboard returns every enabled result for one selection.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	opts := h.analyzeOptions()
	h.executeAnalytics(w, r, "dashboard", func(filtered dataset.Table, q models.Query) interface{} {
		return analytics.AnalyzeFiltered(filtered, q, opts)
	})
}

// Growth returns the CAGR of each selected region with a defined rate.
func (h *Handler) Growth(w http.ResponseWriter, r *http.Request) {
	h.executeAnalytics(w, r, "growth", func(filtered dataset.Table, q models.Query) interface{} {
		return models.GrowthResponse{Query: q, Growth: analytics.ComputeGrowth(filtered)}
	})
}

// Trends returns trend directions and their narratives.
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	opts := h.trendOptions()
	h.executeAnalytics(w, r, "trends", func(filtered dataset.Table, q models.Query) interface{} {
		trends := analytics.ComputeTrend(filtered, q.Regions, q.YearMin, q.YearMax, opts)
		return models.TrendsResponse{
			Query:      q,
			Trends:     trends,
			Narratives: h.narrator.NarrateAll(trends, q),
		}
	})
}

// Stats returns summary statistics per region.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.config.Features.Stats {
		respondFeatureDisabled(w, r, "stats")
		return
	}
	h.executeAnalytics(w, r, "stats", func(filtered dataset.Table, q models.Query) interface{} {
		return models.StatsResponse{Query: q, Stats: analytics.ComputeStats(filtered)}
	})
}

// Map returns per-region averages positioned by the coordinate table.
func (h *Handler) Map(w http.ResponseWriter, r *http.Request) {
	if !h.config.Features.Map {
		respondFeatureDisabled(w, r, "map")
		return
	}
	view := h.geo.View()
	h.executeAnalytics(w, r, "map", func(filtered dataset.Table, q models.Query) interface{} {
		averages, unpositioned := analytics.RegionAverages(filtered, h.geo)
		if averages == nil {
			averages = []models.RegionAverage{}
		}
		return models.MapResponse{
			Query:        q,
			GeoVersion:   h.geo.Version(),
			CenterLat:    view.Latitude,
			CenterLon:    view.Longitude,
			Zoom:         view.Zoom,
			RadiusM:      view.RadiusMeters,
			Averages:     averages,
			Unpositioned: unpositioned,
		}
	})
}
