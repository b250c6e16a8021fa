// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"context"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/regiotrend/internal/logging"
	"github.com/tomtom215/regiotrend/internal/models"
	"github.com/tomtom215/regiotrend/internal/validation"
)

// marshalFailureBody is sent when a response cannot be encoded.
var marshalFailureBody = []byte(`{"status":"error","metadata":{},"error":{"code":"` + CodeInternal + `","message":"Failed to encode response"}}`)

// respondJSON writes response as JSON with an ETag. A response that cannot
// be encoded is replaced by an INTERNAL_ERROR envelope.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		ctx := context.Background()
		if r != nil {
			ctx = r.Context()
		}
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to marshal JSON response")
		status, data = http.StatusInternalServerError, marshalFailureBody
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, meta models.Metadata) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now().UTC()
	}
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: meta,
	})
}

// respondError sends an error envelope. err, when set, is logged with the
// request's IDs and never sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondAPIError(w, r, status, &models.APIError{Code: code, Message: message}, err)
}

func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError, err error) {
	if err != nil {
		ctx := context.Background()
		if r != nil {
			ctx = r.Context()
		}
		event := logging.Ctx(ctx).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(ctx).Error()
		}
		event.Err(err).Str("code", apiErr.Code).Msg("API error")
	}

	respondJSON(w, r, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    apiErr,
	})
}

// respondValidation converts a validator failure into a 400.
func respondValidation(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondAPIError(w, r, http.StatusBadRequest, &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}, nil)
}

// respondFeatureDisabled answers for an endpoint switched off in config.
func respondFeatureDisabled(w http.ResponseWriter, r *http.Request, feature string) {
	respondAPIError(w, r, http.StatusNotFound, &models.APIError{
		Code:    CodeFeatureDisabled,
		Message: "The " + feature + " feature is disabled",
		Details: map[string]interface{}{"feature": feature},
	}, nil)
}

// respondBinary writes a non-JSON payload such as a PNG or an export file.
func respondBinary(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	if filename != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+sanitizeFilename(filename)+`"`)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logging.Debug().Err(err).Msg("Failed to write response body")
	}
}

// generateETag hashes data with FNV-1a.
func generateETag(data []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(data)
	return `"` + strconv.FormatUint(h.Sum64(), 16) + `"`
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r < 0x20 {
			return '_'
		}
		return r
	}, name)
}
