// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"bytes"
	"net/http"

	"github.com/tomtom215/regiotrend/internal/dataset"
	"github.com/tomtom215/regiotrend/internal/validation"
)

// Export downloads the filtered observations as CSV (default) or XLSX.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = dataset.FormatCSV
	}
	// The zero filter always passes, so only the format is checked here;
	// prepare validates the filter itself.
	if verr := validation.ValidateStruct(&validation.ExportRequest{Format: format}); verr != nil {
		respondValidation(w, r, verr)
		return
	}

	req, ok := h.prepare(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := dataset.Export(&buf, req.filtered, format); err != nil {
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Failed to export observations", err)
		return
	}

	filename := h.config.Dataset.ExportFilename + "." + format
	respondBinary(w, dataset.ContentType(format), filename, buf.Bytes())
}
