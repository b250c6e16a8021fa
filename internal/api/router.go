// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/regiotrend/internal/middleware"
)

// Router binds a Handler to its routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Setup builds the HTTP handler with every route and middleware.
func (router *Router) Setup() http.Handler {
	h := router.handler
	mw := router.chiMiddleware

	r := chi.NewRouter()

	// Global middleware, applied in order.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chiMiddleware(middleware.AccessLog(middleware.DefaultSlowRequestThreshold)))
	r.Use(mw.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, CodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(mw.RateLimitCustom(RateLimitHealth))
		r.Use(APISecurityHeaders())
		r.Get("/", h.Health)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		// JSON endpoints.
		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit())
			r.Use(APISecurityHeaders())
			r.Use(chiMiddleware(middleware.Compression))

			r.Get("/regions", h.Regions)
			r.Get("/dashboard", h.Dashboard)
			r.Get("/dashboard/defaults", h.DashboardDefaults)

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/growth", h.Growth)
				r.Get("/trends", h.Trends)
				r.Get("/stats", h.Stats)
				r.Get("/map", h.Map)
			})
		})

		// Rendered output; PNG and XLSX are already compressed.
		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimitCustom(RateLimitRender))
			r.Use(APISecurityHeaders())

			r.Get("/charts/trends.png", h.ChartTrends)
			r.Get("/charts/map.png", h.ChartMap)
			r.Get("/export", h.Export)
		})

		r.With(mw.RateLimitCustom(RateLimitReload), APISecurityHeaders()).
			Post("/dataset/reload", h.Reload)

		r.With(mw.RateLimitCustom(RateLimitWebSocket)).Get("/ws", h.WebSocket)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
