// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"net/http"

	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/logging"
	"github.com/tomtom215/regiotrend/internal/models"
)

// Regions lists the regions of the loaded table and its year bounds.
func (h *Handler) Regions(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	yearMin, yearMax, _ := snap.Table.YearBounds()
	respondSuccess(w, r, models.RegionsResponse{
		Regions: h.regions(r, snap),
		YearMin: yearMin,
		YearMax: yearMax,
		Rows:    snap.Table.Len(),
		Source:  snap.Identity.Location,
		Version: snap.Identity.Version,
	}, models.Metadata{DatasetVersion: snap.Identity.Version})
}

// regions lists from the store when it mirrors snap, else from the table.
func (h *Handler) regions(r *http.Request, snap dataset.Snapshot) []string {
	if h.store == nil || h.store.Version() != snap.Identity.Version {
		return snap.Table.Regions()
	}
	regions, err := h.store.Regions(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Store region listing failed, using loaded table")
		return snap.Table.Regions()
	}
	return regions
}

// DashboardDefaults returns the reset selection.
func (h *Handler) DashboardDefaults(w http.ResponseWriter, r *http.Request) {
	if !h.config.Features.Reset {
		respondFeatureDisabled(w, r, "reset")
		return
	}
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}
	respondSuccess(w, r, h.defaultQuery(snap.Table), models.Metadata{DatasetVersion: snap.Identity.Version})
}

// Reload forces a reload of the dataset source. Unlike ordinary requests it
// reports a failed load instead of serving the previous table.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	h.data.Invalidate()
	if _, err := h.data.Refresh(r.Context()); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeDatasetUnavailable,
			"The dataset could not be reloaded", err)
		return
	}

	snap, _ := h.data.Current()
	logging.Ctx(r.Context()).Info().Str("version", snap.Identity.Version).
		Int("rows", snap.Table.Len()).Msg("Dataset reloaded on request")

	respondSuccess(w, r, models.ReloadResponse{
		Source:   snap.Identity.Location,
		Version:  snap.Identity.Version,
		Rows:     snap.Table.Len(),
		LoadedAt: snap.LoadedAt,
	}, models.Metadata{DatasetVersion: snap.Identity.Version})
}
