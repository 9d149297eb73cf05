// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

/*
Package metrics provides Prometheus metrics collection and export for observability.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:3001/metrics

# Available Metrics

Database Metrics:
  - bpd_db_query_duration_seconds: Query execution time (histogram)
    Labels: operation (count, page, metrics, players, filters, seed, ping), driver
  - bpd_db_query_errors_total: Failed queries (counter)
    Labels: operation, driver, error_type (timeout, canceled, circuit_open, other)
  - bpd_db_connections_open, bpd_db_connections_in_use: Pool statistics (gauge)
  - bpd_db_seeded_rows_total: Development rows inserted (counter)

API Metrics:
  - api_requests_total: Labels method, endpoint (route pattern), status_code
  - api_request_duration_seconds: Labels method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: 429 responses, label endpoint

Authentication Metrics:
  - auth_login_attempts_total: Label result (success, invalid_credentials, error)
  - auth_token_validations_total: Label result (valid, invalid, missing)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Labels name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state

System Metrics:
  - app_info: Labels version, go_version, driver
  - app_uptime_seconds

# Example Alert

	- alert: BPDStoreCircuitOpen
	  expr: circuit_breaker_state{name="bpd-store"} == 2
	  for: 1m

# Thread Safety

All collectors are registered with promauto on the default registry and are
safe for concurrent use.
*/
package metrics
