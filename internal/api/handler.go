// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/regiotrend/internal/analytics"
	"github.com/tomtom215/regiotrend/internal/cache"
	"github.com/tomtom215/regiotrend/internal/config"
	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/geo"
	"github.com/tomtom215/regiotrend/internal/logging"
	ws "github.com/tomtom215/regiotrend/internal/websocket"
)

// Version is reported by the health endpoint.
var Version = "dev"

// Store is the optional DuckDB mirror of the loaded table. The health
// endpoints ping and count it; Regions lists from it once it holds the
// current dataset version.
type Store interface {
	Ping(ctx context.Context) error
	Version() string
	Count(ctx context.Context) (int, error)
	Regions(ctx context.Context) ([]string, error)
}

// Dependencies are the collaborators of a Handler. Data and Config are
// required; the rest fall back to in-memory defaults when nil.
type Dependencies struct {
	Config   *config.Config
	Data     *dataset.Cache
	Filterer dataset.Filterer
	Geo      *geo.Table
	Narrator *analytics.Narrator
	Cache    *cache.Cache
	Hub      *ws.Hub
	Store    Store
}

// Handler serves the API endpoints.
//
// Handler methods are split across files:
//   - handler.go: Handler struct, constructor, shared lookups (this file)
//   - handlers_health.go: health, liveness and readiness
//   - handlers_dataset.go: regions, dashboard defaults, reload
//   - handlers_analytics.go: dashboard bundle, growth, trends, stats, map
//   - handlers_charts.go: PNG charts
//   - handlers_export.go: CSV/XLSX download
//   - handlers_websocket.go: reload notifications
type Handler struct {
	config    *config.Config
	data      *dataset.Cache
	filterer  dataset.Filterer
	geo       *geo.Table
	narrator  *analytics.Narrator
	cache     *cache.Cache
	wsHub     *ws.Hub
	store     Store
	startTime time.Time
}

// NewHandler creates a Handler from deps.
func NewHandler(deps Dependencies) *Handler {
	h := &Handler{
		config:    deps.Config,
		data:      deps.Data,
		filterer:  deps.Filterer,
		geo:       deps.Geo,
		narrator:  deps.Narrator,
		cache:     deps.Cache,
		wsHub:     deps.Hub,
		store:     deps.Store,
		startTime: time.Now(),
	}
	if h.filterer == nil {
		h.filterer = dataset.MemoryFilter{}
	}
	if h.geo == nil {
		h.geo = geo.Default()
	}
	if h.narrator == nil {
		h.narrator = analytics.DefaultNarrator()
	}
	return h
}

// ClearCache drops every cached analytics result.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
	}
}

// snapshot returns the current dataset or writes a 503 and reports false.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) (dataset.Snapshot, bool) {
	snap, err := h.data.Snapshot(r.Context())
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeDatasetUnavailable,
			"The dataset could not be loaded", err)
		return dataset.Snapshot{}, false
	}
	return snap, true
}

func (h *Handler) trendOptions() analytics.TrendOptions {
	return analytics.TrendOptions{ZeroDeltaAsDecreased: h.config.Analytics.ZeroDeltaAsDecreased()}
}

func (h *Handler) analyzeOptions() analytics.Options {
	opts := analytics.Options{
		Trend:        h.trendOptions(),
		Narrator:     h.narrator,
		IncludeStats: h.config.Features.Stats,
	}
	if h.config.Features.Map {
		opts.Locator = h.geo
	}
	return opts
}

func (h *Handler) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		HandshakeTimeout: 10 * time.Second,
		CheckOrigin:      h.checkWebSocketOrigin,
	}
}

// checkWebSocketOrigin accepts origins allowed by the CORS configuration.
// Requests without an Origin header come from non-browser clients and are
// accepted.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.config.Security.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	logging.Ctx(r.Context()).Warn().Str("origin", origin).Msg("WebSocket connection rejected: origin not allowed")
	return false
}
