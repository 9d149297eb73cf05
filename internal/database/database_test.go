// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package database

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/marcelmaino/bpd-dashboard/internal/config"
	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
)

// testDBSemaphore serializes DuckDB use across tests; concurrent CGO calls
// from many in-memory databases can stall under CI resource pressure.
var testDBSemaphore = make(chan struct{}, 1)

func testConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:       config.DriverDuckDB,
		Path:         ":memory:",
		MaxMemory:    "512MB",
		Threads:      1,
		MaxOpenConns: 4,
		MaxIdleConns: 2,
		QueryTimeout: 30 * time.Second,
	}
}

// setupTestDB opens an empty in-memory DuckDB store with the bpd schema.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	return setupTestDBWithConfig(t, testConfig())
}

func setupTestDBWithConfig(t *testing.T, cfg *config.DatabaseConfig) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil && !strings.Contains(err.Error(), "closed") {
			t.Errorf("Close: %v", err)
		}
	})
	return db
}

// fixture is a bpd row with the columns the dashboard filters on.
type fixture struct {
	day      string
	player   string
	agent    string
	club     string
	hands    int64
	realWins float64
}

// insertFixtures writes rows through the same quoting rules as the queries.
// An empty string column is stored as '' and a "NULL" column as NULL.
func insertFixtures(t *testing.T, db *DB, rows []fixture) {
	t.Helper()

	d := db.dialect
	stmt := db.conn.Rebind("INSERT INTO " + db.table() + " (" +
		strings.Join([]string{
			d.Quote(query.ColDia), d.Quote(query.ColPlayerName), d.Quote(query.ColAgentName),
			d.Quote(query.ColClub), d.Quote(query.ColHands), d.Quote(query.ColRealWins),
		}, ", ") + ") VALUES (?, ?, ?, ?, ?, ?)")

	nullable := func(s string) interface{} {
		if s == "NULL" {
			return nil
		}
		return s
	}

	for _, r := range rows {
		day, err := time.Parse(query.DateLayout, r.day)
		if err != nil {
			t.Fatalf("bad fixture day %q: %v", r.day, err)
		}
		if _, err := db.conn.ExecContext(context.Background(), stmt,
			d.DateArg(day), nullable(r.player), nullable(r.agent), nullable(r.club), r.hands, r.realWins,
		); err != nil {
			t.Fatalf("insert fixture: %v", err)
		}
	}
}

func TestNew_CreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	n, err := db.RowCount(context.Background())
	if err != nil {
		t.Fatalf("RowCount: %v", err)
	}
	if n != 0 {
		t.Errorf("RowCount = %d, want 0", n)
	}

	// Schema creation is idempotent.
	if err := db.createSchema(context.Background()); err != nil {
		t.Errorf("second createSchema: %v", err)
	}

	if db.Driver() != config.DriverDuckDB || db.Dialect().Name() != "duckdb" {
		t.Errorf("unexpected driver/dialect %s/%s", db.Driver(), db.Dialect().Name())
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "oracle"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestPing(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestEnsureContext(t *testing.T) {
	db := &DB{cfg: &config.DatabaseConfig{QueryTimeout: 5 * time.Second}}

	ctx, cancel := db.ensureContext(context.Background())
	defer cancel()
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if time.Until(deadline) > 5*time.Second {
		t.Errorf("deadline too far: %v", time.Until(deadline))
	}

	parent, parentCancel := context.WithTimeout(context.Background(), time.Minute)
	defer parentCancel()
	ctx2, cancel2 := db.ensureContext(parent)
	defer cancel2()
	if ctx2 != parent {
		t.Error("context with deadline should be returned unchanged")
	}
}

func TestSchemaStatements_MySQLInlinesIndex(t *testing.T) {
	db := &DB{dialect: query.MySQL}

	stmts := db.schemaStatements()
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	for _, want := range []string{"CREATE TABLE IF NOT EXISTS `bpd`", "` dia` DATE", "` realWins` DECIMAL(18,4)", "INDEX idx_bpd_dia (` dia`)"} {
		if !strings.Contains(stmts[0], want) {
			t.Errorf("expected %q in %s", want, stmts[0])
		}
	}
}

func TestSchemaStatements_Postgres(t *testing.T) {
	db := &DB{dialect: query.Postgres}

	stmts := db.schemaStatements()
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	if !strings.Contains(stmts[0], `" hands" BIGINT`) {
		t.Errorf("unexpected table DDL: %s", stmts[0])
	}
	if stmts[1] != `CREATE INDEX IF NOT EXISTS idx_bpd_dia ON "bpd" (" dia")` {
		t.Errorf("unexpected index DDL: %s", stmts[1])
	}
}
