// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/marcelmaino/bpd-dashboard/internal/logging"
)

// SlowRequestThreshold marks requests logged at warn level.
var SlowRequestThreshold = time.Second

// AccessLog writes one structured line per request through logging.Ctx, so
// lines carry request_id and correlation_id. Server errors and slow requests
// log at warn; probes and scrapes at debug.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		status := statusOf(ww)

		var event *zerolog.Event
		logger := logging.Ctx(r.Context())
		switch {
		case status >= http.StatusInternalServerError || duration > SlowRequestThreshold:
			event = logger.Warn()
		case isQuietPath(r.URL.Path):
			event = logger.Debug()
		default:
			event = logger.Info()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("route", routePattern(r)).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Int64("duration_ms", duration.Milliseconds()).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP request")
	})
}

func isQuietPath(path string) bool {
	switch path {
	case "/metrics", "/health", "/api/health", "/api/health/live", "/api/health/ready":
		return true
	}
	return false
}
