// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package api

import (
	"time"

	"github.com/marcelmaino/bpd-dashboard/internal/auth"
	"github.com/marcelmaino/bpd-dashboard/internal/cache"
	"github.com/marcelmaino/bpd-dashboard/internal/config"
	"github.com/marcelmaino/bpd-dashboard/internal/database"
	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
	"github.com/marcelmaino/bpd-dashboard/internal/logging"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_health.go: health and probe endpoints
//   - handlers_auth.go: login and token validation
//   - handlers_dashboard.go: records, metrics, players, filters
type Handler struct {
	db         *database.DB
	users      auth.UserStore
	jwtManager *auth.JWTManager
	authMW     *auth.Middleware
	config     *config.Config
	cache      *cache.Cache
	pageBounds query.PageBounds
	version    string
	startTime  time.Time
}

// NewHandler creates the API handler.
//
// Dependencies:
//   - db: the bpd store
//   - users: account store used by login
//   - jwtManager: issues tokens at login
//   - authMW: validates tokens for /api/auth/validate
//   - cfg: application configuration (page bounds, cache TTL, session timeout)
//   - version: reported by the health endpoints
//
// Example:
//
//	handler := api.NewHandler(db, users, jwtManager, authMW, cfg, version)
//	router := api.NewRouter(handler, authMW, cfg)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(db *database.DB, users auth.UserStore, jwtManager *auth.JWTManager, authMW *auth.Middleware, cfg *config.Config, version string) *Handler {
	return &Handler{
		db:         db,
		users:      users,
		jwtManager: jwtManager,
		authMW:     authMW,
		config:     cfg,
		cache:      cache.New("dashboard", cfg.API.CacheTTL),
		pageBounds: query.PageBounds{
			DefaultLimit: cfg.API.DefaultPageSize,
			MaxLimit:     cfg.API.MaxPageSize,
		},
		version:   version,
		startTime: time.Now(),
	}
}

// ClearCache drops the cached filter lists and metrics. Called after the
// store is reseeded so the dashboard sees the new values at once.
//
// Thread Safety: Safe for concurrent access.
func (h *Handler) ClearCache() {
	if h.cache.Enabled() {
		h.cache.Clear()
		logging.Info().Msg("Dashboard cache cleared")
	}
}

// Close stops the cache janitor and logs the cache counters.
func (h *Handler) Close() {
	h.cache.Close()
	if !h.cache.Enabled() {
		return
	}
	stats := h.cache.GetStats()
	logging.Info().
		Int64("hits", stats.Hits).
		Int64("misses", stats.Misses).
		Int64("evictions", stats.Evictions).
		Int("keys", stats.Keys).
		Float64("hit_rate", h.cache.HitRate()).
		Msg("Dashboard cache closed")
}
