// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/marcelmaino/bpd-dashboard/internal/logging"
	"github.com/marcelmaino/bpd-dashboard/internal/models"
)

// readinessTimeout bounds the store ping of the readiness probe.
const readinessTimeout = 2 * time.Second

// Health handles GET /, /health and /api/health. It reports process
// status only and never touches the store.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.HealthResponse{
		Status:    "OK",
		Message:   "Backend running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 while the process is serving, regardless of the store.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.ProbeResponse{Status: "alive"})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 when the store cannot be pinged. The ping bypasses the circuit
// breaker; its state is reported alongside.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respondJSON(w, r, http.StatusServiceUnavailable, models.ProbeResponse{
			Status: "not_ready",
			Error:  "database not configured",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		respondJSON(w, r, http.StatusServiceUnavailable, models.ProbeResponse{
			Status:  "not_ready",
			Breaker: h.db.BreakerState(),
			Error:   "database unavailable",
		})
		return
	}

	respondJSON(w, r, http.StatusOK, models.ProbeResponse{
		Status:  "ready",
		Breaker: h.db.BreakerState(),
	})
}
