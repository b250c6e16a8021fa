// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/regiotrend/internal/logging"
	"github.com/tomtom215/regiotrend/internal/models"
)

// Health reports overall status. It never triggers a dataset load.
// Status is "degraded" when no table is loaded or the store does not answer.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	snap, loaded := h.data.Current()
	storeOK := h.store == nil || h.store.Ping(r.Context()) == nil

	status := "healthy"
	if !loaded || !storeOK {
		status = "degraded"
	}

	respondSuccess(w, r, models.HealthStatus{
		Status:        status,
		Version:       Version,
		DatasetLoaded: loaded,
		Rows:          snap.Table.Len(),
		Uptime:        time.Since(h.startTime).Seconds(),
	}, models.Metadata{DatasetVersion: snap.Identity.Version})
}

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}

// HealthReady answers 200 once a dataset is loaded, 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	_, loaded := h.data.Current()
	storeOK := h.store == nil || h.store.Ping(r.Context()) == nil
	ready := loaded && storeOK

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	data := map[string]interface{}{
		"dataset_loaded":  loaded,
		"store_connected": storeOK,
		"ready_to_serve":  ready,
	}
	if h.store != nil && storeOK {
		if n, err := h.store.Count(r.Context()); err == nil {
			data["store_rows"] = n
		} else {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Store row count failed")
		}
	}

	respondJSON(w, r, statusCode, &models.APIResponse{
		Status:   status,
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}
