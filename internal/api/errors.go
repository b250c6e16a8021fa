// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

// Error codes carried in models.APIError.Code.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeFeatureDisabled    = "FEATURE_DISABLED"
	CodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	CodeDatasetUnavailable = "DATASET_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)
