// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Package websocket pushes dataset change notifications to connected dashboards.

It uses gorilla/websocket with a hub-client layout:

	┌──────────┐
	│   Hub    │ ← Broadcasts to all clients
	└────┬─────┘
	     │
	┌────┴─────┬─────────┬─────────┐
	│ Client1  │ Client2 │ Client3 │
	└──────────┴─────────┴─────────┘

Each client runs a readPump (answers application-level pings) and a
writePump (delivers hub messages and keeps the connection alive).

Message types:

  - dataset_reloaded: the served table changed; dashboards should refetch.
    Data carries the source location, version, row count and load time.
  - ping / pong: client-initiated liveness check.

Usage:

	hub := websocket.NewHub()
	go func() { _ = hub.RunWithContext(ctx) }()

	cache.OnReload(func(snap dataset.Snapshot) {
	    hub.BroadcastDatasetReloaded(websocket.DatasetReloadedData{...})
	})

In the server the hub runs as a supervised service and the HTTP layer
upgrades /api/v1/ws requests and registers one Client per connection.

Slow clients whose send buffer fills up are dropped rather than blocking
the broadcast loop. Clients are iterated in ID order so delivery order is
deterministic.
*/
package websocket
