// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package middleware

import (
	"net/http"
	"regexp"

	"github.com/tomtom215/regiotrend/internal/logging"
)

// RequestIDHeader is read from clients and echoed on every response.
const RequestIDHeader = "X-Request-ID"

// validRequestID bounds what is accepted from upstream proxies.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// RequestID middleware generates a unique ID for each request
// and adds it to both the response header and request context.
// An upstream X-Request-ID is kept when it looks sane.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if !validRequestID.MatchString(requestID) {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithNewCorrelationID(ctx)

		next(w, r.WithContext(ctx))
	}
}
