// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/marcelmaino/bpd-dashboard/internal/auth"
	"github.com/marcelmaino/bpd-dashboard/internal/config"
	"github.com/marcelmaino/bpd-dashboard/internal/database"
	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
)

func TestMain(m *testing.M) {
	// Production cost makes every hash take ~250ms.
	auth.PasswordHashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

// testDBSemaphore serializes DuckDB use across tests.
var testDBSemaphore = make(chan struct{}, 1)

const testRemoteAddr = "192.0.2.10:41234"

// testConfig returns a config with development accounts, JWT auth, and
// rate limiting disabled.
func testConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:       config.DriverDuckDB,
			Path:         ":memory:",
			MaxMemory:    "256MB",
			Threads:      1,
			MaxOpenConns: 2,
			MaxIdleConns: 1,
			QueryTimeout: 30 * time.Second,
		},
		API: config.APIConfig{
			DefaultPageSize: 50,
			MaxPageSize:     100,
			CacheTTL:        time.Minute,
		},
		Security: config.SecurityConfig{
			AuthMode:          auth.AuthModeJWT,
			JWTSecret:         "test_secret_with_at_least_32_characters_for_testing",
			SessionTimeout:    time.Hour,
			SeedDefaultUsers:  true,
			RateLimitReqs:     1000,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
			CORSOrigins:       []string{"http://localhost:5173"},
		},
	}
}

// testServer is a fully wired router over an in-memory store.
type testServer struct {
	t       *testing.T
	db      *database.DB
	handler *Handler
	mux     http.Handler
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := database.New(&cfg.Database)
	if err != nil {
		t.Fatalf("database.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	users, err := auth.NewMemoryUserStore(&cfg.Security)
	if err != nil {
		t.Fatalf("NewMemoryUserStore: %v", err)
	}

	var jwtManager *auth.JWTManager
	if cfg.Security.JWTSecret != "" {
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			t.Fatalf("NewJWTManager: %v", err)
		}
	}

	authMW := auth.NewMiddleware(jwtManager, &cfg.Security)
	t.Cleanup(authMW.Stop)

	handler := NewHandler(db, users, jwtManager, authMW, cfg, "test")
	t.Cleanup(handler.Close)

	return &testServer{
		t:       t,
		db:      db,
		handler: handler,
		mux:     NewRouter(handler, authMW, cfg).SetupChi(),
	}
}

// insertRows writes (day, player, agent, club, hands, realWins) rows.
func (s *testServer) insertRows(rows ...[6]interface{}) {
	s.t.Helper()

	d := s.db.Dialect()
	conn := s.db.Conn()
	stmt := conn.Rebind("INSERT INTO " + d.Quote(query.Table) + " (" + strings.Join([]string{
		d.Quote(query.ColDia), d.Quote(query.ColPlayerName), d.Quote(query.ColAgentName),
		d.Quote(query.ColClub), d.Quote(query.ColHands), d.Quote(query.ColRealWins),
	}, ", ") + ") VALUES (?, ?, ?, ?, ?, ?)")

	for _, r := range rows {
		day, err := time.Parse(query.DateLayout, r[0].(string))
		if err != nil {
			s.t.Fatalf("bad day %v: %v", r[0], err)
		}
		if _, err := conn.ExecContext(context.Background(), stmt, d.DateArg(day), r[1], r[2], r[3], r[4], r[5]); err != nil {
			s.t.Fatalf("insert: %v", err)
		}
	}
}

// seedTwentyFive inserts hands 1..25 on 2025-01-01..25. Clubs rotate
// Alpha/Beta/Gamma, agents alternate, realWins cycles -2..2.
func (s *testServer) seedTwentyFive() {
	s.t.Helper()

	rows := make([][6]interface{}, 25)
	for i := range rows {
		rows[i] = [6]interface{}{
			fmt.Sprintf("2025-01-%02d", i+1),
			fmt.Sprintf("player%02d", i+1),
			[]string{"Agent A", "Agent B"}[i%2],
			[]string{"Alpha", "Beta", "Gamma"}[i%3],
			int64(i + 1),
			float64(i%5) - 2,
		}
	}
	s.insertRows(rows...)
}

// do sends a request through the router. body may be nil, a string, or a
// value to JSON-encode.
func (s *testServer) do(method, target string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			s.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.RemoteAddr = testRemoteAddr
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.mux.ServeHTTP(w, req)
	return w
}

// login returns a bearer header for the given account.
func (s *testServer) login(username, password string) map[string]string {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": username, "password": password}, nil)
	if w.Code != http.StatusOK {
		s.t.Fatalf("login %s: status %d body %s", username, w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	decodeBody(s.t, w, &resp)
	return map[string]string{"Authorization": "Bearer " + resp.Data.Token}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}
