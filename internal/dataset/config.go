// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"time"

	"github.com/tomtom215/regiotrend/internal/config"
)

// RemoteCheckInterval limits identity checks against a remote dataset to one
// per interval.
const RemoteCheckInterval = 5 * time.Second

// SourceFor returns the source cfg names: the URL when set, otherwise Path.
func SourceFor(cfg config.DatasetConfig) Source {
	if cfg.UsesHTTP() {
		httpCfg := DefaultHTTPSourceConfig()
		if cfg.HTTPTimeout > 0 {
			httpCfg.Timeout = cfg.HTTPTimeout
		}
		return NewHTTPSource(cfg.URL, httpCfg)
	}
	return NewFileSource(cfg.Path)
}

// NewCacheFor builds a Cache over SourceFor(cfg). Remote sources are checked
// at most once per RemoteCheckInterval.
func NewCacheFor(cfg config.DatasetConfig) *Cache {
	if cfg.UsesHTTP() {
		return NewCache(SourceFor(cfg), WithCheckInterval(RemoteCheckInterval))
	}
	return NewCache(SourceFor(cfg))
}
