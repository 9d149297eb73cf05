// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package metrics

import (
	"context"
	"database/sql"
	"errors"
	"runtime"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bpd_db_query_duration_seconds",
			Help:    "Duration of bpd store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "driver"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bpd_db_query_errors_total",
			Help: "Total number of bpd store query errors",
		},
		[]string{"operation", "driver", "error_type"}, // error_type: timeout, canceled, circuit_open, other
	)

	DBConnectionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bpd_db_connections_open",
			Help: "Number of established connections in the database pool",
		},
	)

	DBConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bpd_db_connections_in_use",
			Help: "Number of pool connections currently in use",
		},
	)

	DBSeededRows = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bpd_db_seeded_rows_total",
			Help: "Total number of development rows inserted by the seeder",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"}, // success, invalid_credentials, error
	)

	AuthTokenValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_token_validations_total",
			Help: "Total number of bearer token validations",
		},
		[]string{"result"}, // valid, invalid, missing
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Cache Metrics
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bpd_cache_lookups_total",
			Help: "Total number of query cache lookups",
		},
		[]string{"cache", "result"}, // result: hit, miss
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version", "driver"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDBQuery records a store query. Errors are bucketed into a small set
// of types so driver messages never become label values.
func RecordDBQuery(operation, driver string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, driver).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, driver, classifyError(err)).Inc()
	}
}

func classifyError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case strings.Contains(err.Error(), "circuit breaker"):
		return "circuit_open"
	default:
		return "other"
	}
}

// UpdatePoolStats publishes database/sql pool statistics.
func UpdatePoolStats(stats sql.DBStats) {
	DBConnectionsOpen.Set(float64(stats.OpenConnections))
	DBConnectionsInUse.Set(float64(stats.InUse))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected with 429.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordAuthAttempt counts a login attempt by outcome.
func RecordAuthAttempt(result string) {
	AuthAttempts.WithLabelValues(result).Inc()
}

// RecordTokenValidation counts a bearer token check by outcome.
func RecordTokenValidation(result string) {
	AuthTokenValidations.WithLabelValues(result).Inc()
}

// RecordCacheLookup counts a query cache hit or miss.
func RecordCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(cache, result).Inc()
}

// SetAppInfo publishes the build information gauge.
func SetAppInfo(version, driver string) {
	AppInfo.WithLabelValues(version, runtime.Version(), driver).Set(1)
}

// UpdateUptime sets app_uptime_seconds from the process start time.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
