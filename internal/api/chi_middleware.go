// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/marcelmaino/bpd-dashboard/internal/logging"
	"github.com/marcelmaino/bpd-dashboard/internal/metrics"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	// Rate limiting configuration
	RateLimitDisabled bool
	RateLimitKeyFunc  httprate.KeyFunc
}

// DefaultChiMiddlewareConfig returns the dashboard defaults. CORS origins
// are empty and must be configured.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins:   []string{},
		CORSAllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "If-None-Match", "X-Request-ID"},
		CORSExposedHeaders:   []string{"ETag", "X-Request-ID", "Retry-After"},
		CORSAllowCredentials: true, // the login cookie
		CORSMaxAge:           86400,
	}
}

// ChiMiddleware provides Chi-compatible middleware factories built on
// go-chi/cors and go-chi/httprate.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		ExposedHeaders:   config.CORSExposedHeaders,
		AllowCredentials: config.CORSAllowCredentials,
		MaxAge:           config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// CORS returns the go-chi/cors handler. It must be global so OPTIONS
// preflight requests reach it before routing.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimitConfig defines rate limit parameters for a route group.
type RateLimitConfig struct {
	// Name labels api_rate_limit_hits_total
	Name string
	// Requests is the number of requests allowed in the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
}

// Route group limits, per client IP.
var (
	// RateLimitLogin is very strict for login attempts
	RateLimitLogin = RateLimitConfig{Name: "login", Requests: 5, Window: 5 * time.Minute}

	// RateLimitAuth is strict limiting for the whole auth group (brute force prevention)
	RateLimitAuth = RateLimitConfig{Name: "auth", Requests: 5, Window: time.Minute}

	// RateLimitData covers the dashboard queries. Opening the dashboard fires
	// four requests and every filter change refetches them.
	RateLimitData = RateLimitConfig{Name: "data", Requests: 1000, Window: time.Minute}

	// RateLimitHealth allows frequent checks from monitoring tools.
	RateLimitHealth = RateLimitConfig{Name: "health", Requests: 1000, Window: time.Minute}
)

// RateLimitCustom returns an httprate limiter for config. Rejected requests
// get the JSON 429 envelope and are counted by route group.
func (m *ChiMiddleware) RateLimitCustom(config RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	keyFunc := m.config.RateLimitKeyFunc
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}

	retryAfter := strconv.Itoa(int(config.Window.Seconds()))
	return httprate.Limit(
		config.Requests,
		config.Window,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitHit(config.Name)
			logging.Ctx(r.Context()).Warn().
				Str("group", config.Name).
				Str("path", sanitizeLogValue(r.URL.Path)).
				Msg("Rate limit exceeded")
			w.Header().Set("Retry-After", retryAfter)
			respondError(w, r, http.StatusTooManyRequests, ErrCodeRateLimited, "Too many requests, please try again later", nil)
		}),
	)
}

// RateLimitLogin returns the login limiter.
func (m *ChiMiddleware) RateLimitLogin() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitLogin)
}

// RateLimitAuth returns the auth group limiter.
func (m *ChiMiddleware) RateLimitAuth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitAuth)
}

// RateLimitData returns the dashboard data limiter.
func (m *ChiMiddleware) RateLimitData() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitData)
}

// RateLimitHealth returns the health endpoint limiter.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitHealth)
}
