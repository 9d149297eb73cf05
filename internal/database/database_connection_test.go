// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package database

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcelmaino/bpd-dashboard/internal/config"
	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.DatabaseConfig
		contains []string
		wantErr  bool
	}{
		{
			name:     "duckdb memory",
			cfg:      config.DatabaseConfig{Driver: config.DriverDuckDB, Path: ":memory:", Threads: 2, MaxMemory: "1GB"},
			contains: []string{":memory:?", "threads=2", "max_memory=1GB", "access_mode=read_write"},
		},
		{
			name:     "sqlite memory",
			cfg:      config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"},
			contains: []string{":memory:"},
		},
		{
			name: "mysql from fields",
			cfg: config.DatabaseConfig{
				Driver: config.DriverMySQL, Host: "db", Port: 3306, User: "bpd", Password: "s3cret", Name: "bpd",
			},
			contains: []string{"bpd:s3cret@tcp(db:3306)/bpd", "parseTime=true"},
		},
		{
			name:     "mysql dsn gains parseTime",
			cfg:      config.DatabaseConfig{Driver: config.DriverMySQL, DSN: "u:p@tcp(10.0.0.5:3307)/poker"},
			contains: []string{"tcp(10.0.0.5:3307)/poker", "parseTime=true"},
		},
		{
			name:    "mysql bad dsn",
			cfg:     config.DatabaseConfig{Driver: config.DriverMySQL, DSN: "not a dsn"},
			wantErr: true,
		},
		{
			name: "postgres from fields",
			cfg: config.DatabaseConfig{
				Driver: config.DriverPostgres, Host: "pg", Port: 5432, User: "bpd", Password: "p@ss", Name: "bpd",
			},
			contains: []string{"postgres://bpd:p%40ss@pg:5432/bpd", "sslmode=disable"},
		},
		{
			name:     "pgx keeps explicit dsn",
			cfg:      config.DatabaseConfig{Driver: config.DriverPgx, DSN: "postgres://u:p@localhost:5432/bpd?sslmode=require"},
			contains: []string{"sslmode=require"},
		},
		{
			name:    "postgres bad dsn",
			cfg:     config.DatabaseConfig{Driver: config.DriverPostgres, DSN: "postgres://u:p@host:notaport/db"},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			cfg:     config.DatabaseConfig{Driver: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := buildDSN(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("buildDSN() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.contains {
				if !strings.Contains(dsn, want) {
					t.Errorf("DSN %q does not contain %q", dsn, want)
				}
			}
		})
	}
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("sql: database is closed"), true},
		{errors.New("dial tcp: connection refused"), true},
		{errors.New("driver: bad connection"), true},
		{errors.New("Binder Error: Referenced column not found"), false},
	}
	for _, tt := range tests {
		if got := isConnectionError(tt.err); got != tt.want {
			t.Errorf("isConnectionError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

// TestSQLiteStore runs the filter path on sqlite3, where dates are text.
func TestSQLiteStore(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "bpd.sqlite"),
	}
	db := setupTestDBWithConfig(t, cfg)
	insertFixtures(t, db, twentyFiveRows())

	page, err := db.QueryRecords(context.Background(), mustFilter(t, "startDate=2025-01-20&search=ALPHA"), query.NewSort("hands", "asc"), query.Page{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("QueryRecords: %v", err)
	}
	// Alpha rows from the 20th on fall on the 22nd and 25th.
	if page.Total != 2 || len(page.Records) != 2 {
		t.Fatalf("Total = %d (%d records), want 2", page.Total, len(page.Records))
	}
	if page.Records[0].Dia.String() != "2025-01-22" {
		t.Errorf("first dia = %s, want 2025-01-22", page.Records[0].Dia.String())
	}

	m, err := db.QueryMetrics(context.Background(), query.Filter{})
	if err != nil {
		t.Fatalf("QueryMetrics: %v", err)
	}
	if m.TotalHands != 325 {
		t.Errorf("TotalHands = %d, want 325", m.TotalHands)
	}

	opts, err := db.FilterOptions(context.Background())
	if err != nil {
		t.Fatalf("FilterOptions: %v", err)
	}
	if opts.DateRange.Min.String() != "2025-01-01" || opts.DateRange.Max.String() != "2025-01-25" {
		t.Errorf("DateRange = %s..%s", opts.DateRange.Min, opts.DateRange.Max)
	}
}
