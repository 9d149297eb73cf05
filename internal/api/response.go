// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package api

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/marcelmaino/bpd-dashboard/internal/database"
	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
	"github.com/marcelmaino/bpd-dashboard/internal/logging"
	"github.com/marcelmaino/bpd-dashboard/internal/models"
)

// Error codes for API responses
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

const (
	msgInternalError      = "Internal server error"
	msgServiceUnavailable = "Service temporarily unavailable"
)

// sanitizeLogValue escapes control characters so client input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// respondJSON writes v with an ETag. A GET whose If-None-Match matches the
// body gets 304 and no body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Cache-Control", "private, no-cache")
	h.Set("Vary", "Authorization, Cookie")

	if status == http.StatusOK {
		etag := generateETag(data)
		h.Set("ETag", etag)
		if r.Method == http.MethodGet && etagMatches(r.Header.Get("If-None-Match"), etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag returns a strong ETag built from the FNV-1a hash of data.
func generateETag(data []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(data) //nolint:errcheck // hash.Hash never fails
	return fmt.Sprintf("\"%016x\"", h.Sum64())
}

// etagMatches implements the If-None-Match comparison, including "*" and
// comma-separated lists.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// respondError writes the error envelope.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}) {
	respondJSON(w, r, status, models.ErrorResponse{
		Success: false,
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Message: message,
	})
}

// respondQueryError maps a store or parameter error to the client response.
// Causes of 5xx responses are logged with the request id and never returned.
func respondQueryError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	var paramErr *query.ParamError
	switch {
	case errors.As(err, &paramErr):
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, paramErr.Error(), map[string]interface{}{
			"field": paramErr.Param,
			"value": paramErr.Value,
		})
	case errors.Is(err, database.ErrCircuitOpen):
		logging.Ctx(r.Context()).Warn().Str("operation", operation).Msg("Store circuit open, rejecting request")
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgServiceUnavailable, nil)
	default:
		logging.Ctx(r.Context()).Error().
			Err(err).
			Str("operation", operation).
			Str("query", sanitizeLogValue(r.URL.RawQuery)).
			Msg("Dashboard query failed")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, msgInternalError, nil)
	}
}

// notFound is the JSON 404 handler for unknown routes.
func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
}

// methodNotAllowed is the JSON 405 handler for known routes.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
}
