// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/marcelmaino/bpd-dashboard/internal/metrics"
)

func TestPrometheusMetrics_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/api/test-prom/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok")) //nolint:errcheck
	})
	r.Post("/api/test-prom/fail", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	okCounter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/test-prom/{id}", "200")
	failCounter := metrics.APIRequestsTotal.WithLabelValues(http.MethodPost, "/api/test-prom/fail", "500")
	missCounter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	okBefore := testutil.ToFloat64(okCounter)
	failBefore := testutil.ToFloat64(failCounter)
	missBefore := testutil.ToFloat64(missCounter)

	for _, path := range []string{"/api/test-prom/1", "/api/test-prom/2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d", path, rec.Code)
		}
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/test-prom/fail", nil))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no/such/route", nil))

	if got := testutil.ToFloat64(okCounter) - okBefore; got != 2 {
		t.Errorf("200 counter delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(failCounter) - failBefore; got != 1 {
		t.Errorf("500 counter delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(missCounter) - missBefore; got != 1 {
		t.Errorf("unmatched counter delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.APIActiveRequests); got != 0 {
		t.Errorf("active requests = %v after all requests finished", got)
	}
}

func TestRoutePattern_WithoutRouter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/plain", nil)
	if got := routePattern(req); got != unmatchedRoute {
		t.Errorf("routePattern() = %q, want %q", got, unmatchedRoute)
	}
}
