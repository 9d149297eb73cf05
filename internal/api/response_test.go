// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/marcelmaino/bpd-dashboard/internal/database"
	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
	"github.com/marcelmaino/bpd-dashboard/internal/models"
)

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"line1\nline2", `line1\x0aline2`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
		{"jogador çâ", "jogador çâ"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte(`{"success":true}`))
	b := generateETag([]byte(`{"success":true}`))
	c := generateETag([]byte(`{"success":false}`))

	if a != b {
		t.Errorf("same body produced %s and %s", a, b)
	}
	if a == c {
		t.Error("different bodies produced the same ETag")
	}
	if len(a) != 18 || !strings.HasPrefix(a, `"`) || !strings.HasSuffix(a, `"`) {
		t.Errorf("ETag %s is not a quoted 16-digit hash", a)
	}
}

func TestEtagMatches(t *testing.T) {
	t.Parallel()

	const etag = `"00000000deadbeef"`
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{etag, true},
		{"W/" + etag, true},
		{`"other", ` + etag, true},
		{"*", true},
		{`"other"`, false},
	}
	for _, tt := range tests {
		if got := etagMatches(tt.header, etag); got != tt.want {
			t.Errorf("etagMatches(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestRespondJSON_NotModified(t *testing.T) {
	t.Parallel()

	body := models.PlayersResponse{Success: true, Players: []string{"A"}}

	w := httptest.NewRecorder()
	respondJSON(w, httptest.NewRequest(http.MethodGet, "/api/players", nil), http.StatusOK, body)
	etag := w.Header().Get("ETag")
	if w.Code != http.StatusOK || etag == "" {
		t.Fatalf("status %d etag %q", w.Code, etag)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/players", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	respondJSON(w, req, http.StatusOK, body)
	if w.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("304 must not carry a body, got %q", w.Body.String())
	}

	// Error responses never short-circuit.
	req = httptest.NewRequest(http.MethodGet, "/api/players", nil)
	req.Header.Set("If-None-Match", "*")
	w = httptest.NewRecorder()
	respondJSON(w, req, http.StatusBadRequest, body)
	if w.Code != http.StatusBadRequest || w.Header().Get("ETag") != "" {
		t.Errorf("status = %d etag = %q, want 400 without ETag", w.Code, w.Header().Get("ETag"))
	}
}

func TestRespondQueryError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "bad parameter",
			err:        &query.ParamError{Param: "endDate", Value: "x", Reason: "expected a date in YYYY-MM-DD format"},
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeValidation,
		},
		{
			name:       "circuit open",
			err:        fmt.Errorf("records: %w", database.ErrCircuitOpen),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrCodeServiceUnavailable,
		},
		{
			name:       "driver failure",
			err:        errors.New("Error 1146 (42S02): Table 'bpd_database.bpd' doesn't exist"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			respondQueryError(w, httptest.NewRequest(http.MethodGet, "/api/bpd-data", nil), "records", tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			body := w.Body.String()
			if !strings.Contains(body, `"code":"`+tt.wantCode+`"`) || !strings.Contains(body, `"success":false`) {
				t.Errorf("unexpected body %s", body)
			}
			if tt.wantStatus >= 500 && strings.Contains(body, "bpd_database") {
				t.Errorf("internal error leaked: %s", body)
			}
		})
	}
}
