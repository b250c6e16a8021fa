// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/regiotrend/internal/api"
	"github.com/tomtom215/regiotrend/internal/config"
	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/logging"
	"github.com/tomtom215/regiotrend/internal/supervisor"
	"github.com/tomtom215/regiotrend/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	api.Version = version

	logging.Info().
		Str("version", version).
		Str("source", describeSource(cfg)).
		Str("storage", cfg.Storage.Backend).
		Str("environment", cfg.Server.Environment).
		Msg("Starting regiotrend")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}

	app, err := newApp(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer app.close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Warm the cache so the first request does not pay for the load. A
	// failure here is not fatal: the reloader and the next request retry.
	if _, err := app.data.Get(ctx); err != nil {
		logging.Warn().Err(err).Msg("Initial dataset load failed, serving 503 until the source is readable")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// Charts and XLSX exports can take a while on large selections.
		WriteTimeout: 2 * cfg.Server.Timeout,
		IdleTimeout:  2 * time.Minute,
	}

	tree.AddDataService(services.NewDatasetReloaderService(dataset.NewReloader(app.data, cfg.Dataset.ReloadInterval)))
	tree.AddMessagingService(services.NewNotificationHubService(app.hub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("regiotrend stopped")
}

func describeSource(cfg *config.Config) string {
	if cfg.Dataset.UsesHTTP() {
		return cfg.Dataset.URL
	}
	return cfg.Dataset.Path
}
