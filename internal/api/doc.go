// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

/*
Package api provides the HTTP API of the BPD Dashboard.

Routes:

	GET  /, /health, /api/health   process status, version, uptime
	GET  /api/health/live          liveness probe
	GET  /api/health/ready         readiness probe (pings the store)
	GET  /metrics                  Prometheus exposition
	POST /api/auth/login, /login   credentials in, JWT out
	GET  /api/auth/validate        token check
	GET  /api/bpd-data             one page of hand records
	GET  /api/metrics              summary cards ("metrics")
	GET  /api/dashboard/metrics    summary cards ("data" and "metrics")
	GET  /api/players              distinct player names
	GET  /api/dashboard/filters    filter values and date range

The dashboard routes require a bearer token (or the "token" cookie) unless
AUTH_MODE=none.

# Responses

Bodies are encoded with goccy/go-json. Successful responses carry an ETag
and a matching If-None-Match on a GET yields 304. Failures use
models.ErrorResponse:

	{"success": false, "error": {"code": "VALIDATION_ERROR", "message": "..."}, "message": "..."}

Query failures are logged with the request id and reported as a generic
500; an open store circuit breaker is reported as 503.

# Rate Limits

Per client IP, with go-chi/httprate: login 5 per 5 minutes and 5 per
minute, dashboard and validate 1000 per minute, health 1000 per minute.
auth.Middleware.RateLimit adds the global RATE_LIMIT_REQUESTS limit.

# Usage

	handler := api.NewHandler(db, users, jwtManager, authMW, cfg, version)
	defer handler.Close()
	router := api.NewRouter(handler, authMW, cfg)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
