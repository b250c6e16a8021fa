// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"context"
	"time"

	"github.com/tomtom215/regiotrend/internal/logging"
)

// Refresher is the part of *Cache the Reloader drives.
type Refresher interface {
	Refresh(ctx context.Context) (bool, error)
}

// Reloader polls a Refresher on a fixed interval so that source changes are
// picked up without waiting for a request. It implements suture.Service.
type Reloader struct {
	cache    Refresher
	interval time.Duration
	name     string
}

// NewReloader returns a Reloader polling every interval. An interval <= 0
// makes Serve load once and then idle until canceled.
func NewReloader(cache Refresher, interval time.Duration) *Reloader {
	return &Reloader{
		cache:    cache,
		interval: interval,
		name:     "dataset-reloader",
	}
}

// Serve performs an initial refresh, then one per tick until ctx is done.
// Refresh failures are logged and never stop the loop; the cache keeps
// serving the previous table.
func (r *Reloader) Serve(ctx context.Context) error {
	r.refresh(ctx)

	if r.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Reloader) refresh(ctx context.Context) {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	reloaded, err := r.cache.Refresh(ctx)
	logger := logging.WithComponent(r.name).With().
		Str("correlation_id", logging.CorrelationIDFromContext(ctx)).Logger()
	switch {
	case err != nil && ctx.Err() == nil:
		logger.Warn().Err(err).Msg("Dataset refresh failed")
	case reloaded:
		logger.Debug().Msg("Dataset refreshed")
	}
}

// String implements fmt.Stringer for suture logs.
func (r *Reloader) String() string {
	return r.name
}
