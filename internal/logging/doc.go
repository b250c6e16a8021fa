// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

// Package logging provides zerolog-based structured logging for Regiotrend.
//
// A single global logger is configured once from main and shared by every
// package. JSON output is the default; console output is available for
// local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("source", src.String()).Int("rows", t.Len()).Msg("Dataset loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Dataset refresh failed")
//
// # Context
//
// HTTP middleware stores a request ID in the request context. Loggers obtained
// through Ctx carry the request and correlation IDs automatically.
//
// # Supervisor Integration
//
// NewSlogLogger returns a *slog.Logger backed by zerolog so that sutureslog
// writes supervisor events through the same pipeline.
package logging
