// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/regiotrend/internal/analytics"
	"github.com/tomtom215/regiotrend/internal/api"
	"github.com/tomtom215/regiotrend/internal/cache"
	"github.com/tomtom215/regiotrend/internal/config"
	"github.com/tomtom215/regiotrend/internal/database"
	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/geo"
	"github.com/tomtom215/regiotrend/internal/logging"
	ws "github.com/tomtom215/regiotrend/internal/websocket"
)

// storeSyncTimeout bounds copying a freshly loaded table into DuckDB.
const storeSyncTimeout = 2 * time.Minute

// app holds the long-lived components shared by the HTTP server and the
// supervised services.
type app struct {
	data    *dataset.Cache
	hub     *ws.Hub
	results *cache.Cache
	store   *database.DB
	handler *api.Handler
	router  http.Handler
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{hub: ws.NewHub()}

	a.data = dataset.NewCacheFor(cfg.Dataset)

	geoTable, err := geo.LoadOrDefault(cfg.Geo.Path)
	if err != nil {
		return nil, fmt.Errorf("load region coordinates: %w", err)
	}
	logging.Info().
		Str("version", geoTable.Version()).
		Int("regions", len(geoTable.Regions())).
		Msg("Region coordinates loaded")

	narrator, err := analytics.NewNarrator(cfg.Analytics.NarrativeLocale)
	if err != nil {
		return nil, fmt.Errorf("narrative locale: %w", err)
	}

	if cfg.API.CacheTTL > 0 {
		a.results = cache.New(cfg.API.CacheTTL)
		logging.Info().Dur("ttl", a.results.TTL()).Msg("Result cache enabled")
	}

	deps := api.Dependencies{
		Config:   cfg,
		Data:     a.data,
		Geo:      geoTable,
		Narrator: narrator,
		Cache:    a.results,
		Hub:      a.hub,
	}

	if cfg.Storage.Backend == config.BackendDuckDB {
		a.store, err = database.New(&cfg.Storage)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("open duckdb store: %w", err)
		}
		deps.Filterer = a.store
		deps.Store = a.store
		logging.Info().Str("path", a.store.Path()).Str("version", a.store.Version()).Msg("DuckDB store ready")
	}

	a.data.OnReload(a.onReload)

	a.handler = api.NewHandler(deps)
	a.router = api.NewRouter(a.handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security))).Setup()
	return a, nil
}

// onReload runs after every successful dataset load: cached results for the
// old version are dropped, the store is resynchronised and WebSocket clients
// are told about the new version.
func (a *app) onReload(snap dataset.Snapshot) {
	if a.results != nil {
		a.results.Clear()
	}

	if a.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeSyncTimeout)
		err := a.store.Replace(ctx, snap)
		cancel()
		if err != nil {
			// Filter falls back to the in-memory table while versions differ.
			logging.Error().Err(err).Str("version", snap.Identity.Version).Msg("Failed to sync dataset into DuckDB")
		}
	}

	a.hub.BroadcastDatasetReloaded(snap.Identity.Location, snap.Identity.Version, snap.Table.Len(), snap.LoadedAt)
}

func (a *app) close() {
	if a.results != nil {
		a.results.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing DuckDB store")
		}
	}
}
