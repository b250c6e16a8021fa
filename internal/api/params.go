// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/models"
	"github.com/tomtom215/regiotrend/internal/validation"
)

// defaultQuery is the reset selection for the loaded table.
func (h *Handler) defaultQuery(t dataset.Table) models.Query {
	d := h.config.Dataset
	return dataset.DefaultQuery(t, d.DefaultRegionCount, d.DefaultYearMin, d.DefaultYearMax)
}

// parseAnalyticsRequest decodes and validates the common filter parameters.
// Absent parameters take their value from defaults. On failure the 400 has
// already been written and ok is false.
func parseAnalyticsRequest(w http.ResponseWriter, r *http.Request, defaults models.Query) (validation.AnalyticsRequest, bool) {
	values := r.URL.Query()
	req := validation.AnalyticsRequest{
		Regions: defaults.Regions,
		YearMin: defaults.YearMin,
		YearMax: defaults.YearMax,
	}

	if raw, present := values["regions"]; present {
		req.Regions = splitRegions(raw)
	}

	var verr *validation.RequestValidationError
	req.YearMin, verr = intParam(values, "year_min", req.YearMin)
	if verr != nil {
		respondValidation(w, r, verr)
		return req, false
	}
	req.YearMax, verr = intParam(values, "year_max", req.YearMax)
	if verr != nil {
		respondValidation(w, r, verr)
		return req, false
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidation(w, r, verr)
		return req, false
	}
	return req, true
}

// splitRegions flattens repeated and comma separated values. Blanks and
// duplicates are dropped; first-seen order is kept.
func splitRegions(raw []string) []string {
	var parts []string
	for _, value := range raw {
		parts = append(parts, strings.Split(value, ",")...)
	}
	return dataset.NormalizeRegions(parts)
}

// intParam parses an optional integer parameter.
func intParam(values url.Values, key string, fallback int) (int, *validation.RequestValidationError) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, validation.NewRequestValidationError(key, "integer", raw, key+" must be an integer")
	}
	return n, nil
}

// isTrue reports whether a boolean query flag is set.
func isTrue(values url.Values, key string) bool {
	b, err := strconv.ParseBool(values.Get(key))
	return err == nil && b
}
