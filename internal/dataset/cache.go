// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/regiotrend/internal/logging"
	"github.com/tomtom215/regiotrend/internal/metrics"
)

// Snapshot is a loaded table together with the source identity it came from.
type Snapshot struct {
	Table    Table
	Identity Identity
	LoadedAt time.Time
}

// ReloadFunc is called after every successful (re)load.
type ReloadFunc func(Snapshot)

// Cache memoises the Table loaded from a Source, keyed by the source's
// Identity. A reload happens only when the identity changes or after
// Invalidate. When a reload fails the previous table keeps being served.
type Cache struct {
	source        Source
	checkInterval time.Duration
	now           func() time.Time

	// loadMu serialises stat+load so concurrent callers trigger one load.
	loadMu sync.Mutex

	mu          sync.RWMutex
	snapshot    Snapshot
	loaded      bool
	invalidated bool
	lastCheck   time.Time
	listeners   []ReloadFunc
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithCheckInterval skips identity checks made within d of the previous one.
// Useful for remote sources where Stat costs a round trip.
func WithCheckInterval(d time.Duration) CacheOption {
	return func(c *Cache) {
		c.checkInterval = d
	}
}

// NewCache creates an empty cache over src. Nothing is loaded until the
// first Get or Refresh.
func NewCache(src Source, opts ...CacheOption) *Cache {
	c := &Cache{source: src, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Source returns the underlying source.
func (c *Cache) Source() Source {
	return c.source
}

// OnReload registers fn to run after every successful load.
func (c *Cache) OnReload(fn ReloadFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Invalidate forces the next Get or Refresh to reload regardless of identity.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = true
	c.lastCheck = time.Time{}
	metrics.RecordCacheCheck("invalidated")
}

// Current returns the loaded snapshot without touching the source.
func (c *Cache) Current() (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot, c.loaded
}

// Get returns the table for the source's current identity, reloading if
// needed. If a refresh fails but an earlier table exists, the earlier table
// is returned and the failure is logged.
func (c *Cache) Get(ctx context.Context) (Table, error) {
	snap, err := c.Snapshot(ctx)
	return snap.Table, err
}

// Snapshot is Get returning the identity and load time as well.
func (c *Cache) Snapshot(ctx context.Context) (Snapshot, error) {
	if _, err := c.Refresh(ctx); err != nil {
		if snap, ok := c.Current(); ok {
			logging.Ctx(ctx).Warn().Err(err).Str("source", c.source.String()).
				Str("serving", snap.Identity.Version).Msg("Dataset refresh failed, serving previous table")
			return snap, nil
		}
		return Snapshot{}, err
	}
	snap, _ := c.Current()
	return snap, nil
}

// Refresh checks the source identity and reloads when it changed.
// It reports whether a reload happened.
func (c *Cache) Refresh(ctx context.Context) (bool, error) {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	c.mu.RLock()
	loaded, invalidated := c.loaded, c.invalidated
	current := c.snapshot.Identity
	recentlyChecked := c.checkInterval > 0 && c.now().Sub(c.lastCheck) < c.checkInterval
	c.mu.RUnlock()

	if loaded && !invalidated && recentlyChecked {
		return false, nil
	}

	if loaded && !invalidated {
		id, err := c.source.Stat(ctx)
		if err != nil {
			metrics.RecordCacheCheck("stat_error")
			return false, err
		}
		c.markChecked()
		if id == current {
			metrics.RecordCacheCheck("unchanged")
			return false, nil
		}
		metrics.RecordCacheCheck("changed")
	}

	snap, err := c.load(ctx)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	c.snapshot = snap
	c.loaded = true
	c.invalidated = false
	c.lastCheck = c.now()
	listeners := append([]ReloadFunc(nil), c.listeners...)
	c.mu.Unlock()

	logging.Ctx(ctx).Info().Str("source", c.source.String()).Str("version", snap.Identity.Version).
		Int("rows", snap.Table.Len()).Msg("Dataset loaded")

	for _, fn := range listeners {
		fn(snap)
	}
	return true, nil
}

func (c *Cache) markChecked() {
	c.mu.Lock()
	c.lastCheck = c.now()
	c.mu.Unlock()
}

func (c *Cache) load(ctx context.Context) (Snapshot, error) {
	start := c.now()

	rc, id, err := c.source.Open(ctx)
	if err != nil {
		metrics.RecordDatasetLoad(c.source.String(), 0, time.Since(start), err)
		return Snapshot{}, err
	}
	defer rc.Close()

	table, err := Load(rc)
	metrics.RecordDatasetLoad(c.source.String(), table.Len(), time.Since(start), err)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load %s: %w", c.source, err)
	}

	return Snapshot{Table: table, Identity: id, LoadedAt: c.now()}, nil
}
