// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/regiotrend/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which requests log at warn.
const DefaultSlowRequestThreshold = time.Second

// AccessLog returns middleware that logs every request through logging.Ctx,
// so the line carries the request and correlation IDs set by RequestID.
// Requests slower than slow are logged at warn level; 5xx responses at error.
func AccessLog(slow time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := newStatusRecorder(w)

			next(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())

			var event *zerolog.Event
			switch {
			case wrapper.statusCode >= http.StatusInternalServerError:
				event = logger.Error()
			case slow > 0 && duration > slow:
				event = logger.Warn().Bool("slow", true)
			default:
				event = logger.Debug()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Int("bytes", wrapper.bytes).
				Int64("duration_ms", duration.Milliseconds()).
				Msg("http request")
		}
	}
}
