// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package api

import (
	"net/http"

	"github.com/marcelmaino/bpd-dashboard/internal/cache"
	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
	"github.com/marcelmaino/bpd-dashboard/internal/models"
)

// Cache keys of the unfiltered discovery responses. Metrics entries are
// keyed per filter with cache.GenerateKey.
const (
	cacheKeyPlayers = "players"
	cacheKeyFilters = "filters"
	cacheKeyMetrics = "metrics"
)

// BPDData handles GET /api/bpd-data: one page of hand records.
//
// Query parameters:
//   - page, limit: pagination (limit clamped to API_MAX_PAGE_SIZE)
//   - sortField, sortDirection: ORDER BY from an allow-list, default dia DESC
//   - startDate, endDate: inclusive YYYY-MM-DD bounds
//   - playerName, search, clubs, agents, players: see query.ParseFilter
func (h *Handler) BPDData(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	f, err := query.ParseFilter(values)
	if err != nil {
		respondQueryError(w, r, "records", err)
		return
	}
	s := query.ParseSort(values)
	p := query.ParsePage(values, h.pageBounds)

	page, err := h.db.QueryRecords(r.Context(), f, s, p)
	if err != nil {
		respondQueryError(w, r, "records", err)
		return
	}

	records := page.Records
	if records == nil {
		records = []models.HandRecord{}
	}

	respondJSON(w, r, http.StatusOK, models.RecordsResponse{
		Success:    true,
		Data:       records,
		Total:      page.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages(page.Total),
	})
}

// Metrics handles GET /api/metrics, the summary cards under the legacy
// "metrics" key.
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	m, ok := h.queryMetrics(w, r)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, models.MetricsResponse{Success: true, Metrics: m})
}

// DashboardMetrics handles GET /api/dashboard/metrics. The summary is
// returned under both "data" and "metrics".
func (h *Handler) DashboardMetrics(w http.ResponseWriter, r *http.Request) {
	m, ok := h.queryMetrics(w, r)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, models.MetricsResponse{Success: true, Data: m, Metrics: m})
}

func (h *Handler) queryMetrics(w http.ResponseWriter, r *http.Request) (*models.Metrics, bool) {
	f, err := query.ParseFilter(r.URL.Query())
	if err != nil {
		respondQueryError(w, r, "metrics", err)
		return nil, false
	}

	key := cache.GenerateKey(cacheKeyMetrics, f)
	if cached, ok := h.cache.Get(key); ok {
		return cached.(*models.Metrics), true //nolint:forcetypeassert // only *Metrics is stored under metrics keys
	}

	m, err := h.db.QueryMetrics(r.Context(), f)
	if err != nil {
		respondQueryError(w, r, "metrics", err)
		return nil, false
	}
	h.cache.Set(key, m)
	return m, true
}

// Players handles GET /api/players: every distinct player name, sorted.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	var players []string
	if cached, ok := h.cache.Get(cacheKeyPlayers); ok {
		players = cached.([]string) //nolint:forcetypeassert // only []string is stored under this key
	} else {
		var err error
		players, err = h.db.ListPlayers(r.Context())
		if err != nil {
			respondQueryError(w, r, "players", err)
			return
		}
		if players == nil {
			players = []string{}
		}
		h.cache.Set(cacheKeyPlayers, players)
	}

	respondJSON(w, r, http.StatusOK, models.PlayersResponse{Success: true, Players: players})
}

// Filters handles GET /api/dashboard/filters: the values offered by the
// filter controls and the span of dates in the table. Discovery is
// unfiltered; query parameters are ignored.
func (h *Handler) Filters(w http.ResponseWriter, r *http.Request) {
	var opts *models.FilterOptions
	if cached, ok := h.cache.Get(cacheKeyFilters); ok {
		opts = cached.(*models.FilterOptions) //nolint:forcetypeassert // only *FilterOptions is stored under this key
	} else {
		var err error
		opts, err = h.db.FilterOptions(r.Context())
		if err != nil {
			respondQueryError(w, r, "filters", err)
			return
		}
		h.cache.Set(cacheKeyFilters, opts)
	}

	respondJSON(w, r, http.StatusOK, models.FiltersResponse{Success: true, Data: opts})
}
