// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"net/http"

	"github.com/tomtom215/regiotrend/internal/logging"
	ws "github.com/tomtom215/regiotrend/internal/websocket"
)

// WebSocket upgrades the connection and subscribes it to dataset_reloaded
// notifications.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeInternal, "Notifications are not available", nil)
		return
	}
	if err := ws.Upgrade(h.wsHub, h.upgrader(), w, r); err != nil {
		// The upgrader has already answered the request.
		logging.Ctx(r.Context()).Debug().Err(err).Msg("WebSocket upgrade failed")
	}
}
