// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

/*
Package middleware provides the chi middleware shared by every route.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - AccessLog: one zerolog line per request, warn for 5xx and slow requests
  - PrometheusMetrics: request count, duration, and in-flight gauge labeled by
    chi route pattern
  - SecurityHeaders: CSP, X-Frame-Options, nosniff, and HSTS behind HTTPS

Middleware Stack:

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.SecurityHeaders)

RequestID must run before AccessLog so access lines carry the request id.
Authentication and rate limiting live in package auth and in the api router.
*/
package middleware
