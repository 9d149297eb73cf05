// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marcelmaino/bpd-dashboard/internal/auth"
	"github.com/marcelmaino/bpd-dashboard/internal/config"
	"github.com/marcelmaino/bpd-dashboard/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	auth          *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. Rate limiters key on auth.Middleware.ClientIP,
// so forwarding headers only count from TRUSTED_PROXIES.
func NewRouter(handler *Handler, authMW *auth.Middleware, cfg *config.Config) *Router {
	chiCfg := DefaultChiMiddlewareConfig()
	chiCfg.CORSAllowedOrigins = cfg.Security.CORSOrigins
	chiCfg.RateLimitDisabled = cfg.Security.RateLimitDisabled
	chiCfg.RateLimitKeyFunc = func(r *http.Request) (string, error) {
		return authMW.ClientIP(r), nil
	}

	return &Router{
		handler:       handler,
		auth:          authMW,
		chiMiddleware: NewChiMiddleware(chiCfg),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)         // X-Request-ID and logging context
	r.Use(middleware.PrometheusMetrics) // api_requests_total by route pattern
	r.Use(middleware.AccessLog)         // one line per request
	r.Use(chimiddleware.Recoverer)      // panics become 500
	r.Use(middleware.SecurityHeaders)   // CSP, nosniff, HSTS behind TLS
	r.Use(router.chiMiddleware.CORS())  // must be global for OPTIONS preflight
	r.Use(router.auth.RateLimit)        // RATE_LIMIT_REQUESTS per client
	r.Use(chimiddleware.Compress(5))    // gzip JSON bodies
	r.Use(chimiddleware.CleanPath)      // "//api/bpd-data" routes normally

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// ========================
	// Health Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())

		r.Get("/", router.handler.Health)
		r.Get("/health", router.handler.Health)
		r.Get("/api/health", router.handler.Health)
		r.Get("/api/health/live", router.handler.HealthLive)
		r.Get("/api/health/ready", router.handler.HealthReady)
		r.Handle("/metrics", promhttp.Handler())
	})

	// ========================
	// Authentication Endpoints
	// ========================
	// Login has the strictest limits (5/min and 5 per 5 minutes)
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAuth())
		r.Use(router.chiMiddleware.RateLimitLogin())

		r.Post("/api/auth/login", router.handler.Login)
		r.Post("/login", router.handler.Login)
	})

	// Validate runs on every dashboard load, so it shares the data limit.
	r.With(router.chiMiddleware.RateLimitData()).Get("/api/auth/validate", router.handler.Validate)

	// ========================
	// Dashboard Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitData())
		r.Use(router.auth.Authenticate) // open when AUTH_MODE=none

		r.Get("/api/bpd-data", router.handler.BPDData)
		r.Get("/api/metrics", router.handler.Metrics)
		r.Get("/api/players", router.handler.Players)
		r.Get("/api/dashboard/metrics", router.handler.DashboardMetrics)
		r.Get("/api/dashboard/filters", router.handler.Filters)
	})

	return r
}
