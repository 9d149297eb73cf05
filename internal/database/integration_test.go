// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/marcelmaino/bpd-dashboard/internal/config"
	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
	"github.com/marcelmaino/bpd-dashboard/internal/testinfra"
)

// TestPostgresDrivers runs the dashboard queries against a real server
// through both lib/pq and pgx.
func TestPostgresDrivers(t *testing.T) {
	pg := testinfra.NewPostgresContainer(t)

	for _, driver := range []string{config.DriverPostgres, config.DriverPgx} {
		t.Run(driver, func(t *testing.T) {
			cfg := &config.DatabaseConfig{
				Driver:          driver,
				DSN:             pg.DSN,
				MaxOpenConns:    4,
				MaxIdleConns:    2,
				ConnMaxLifetime: time.Minute,
				QueryTimeout:    30 * time.Second,
			}
			db, err := New(cfg)
			if err != nil {
				t.Fatalf("New(%s): %v", driver, err)
			}
			defer db.Close()

			ctx := context.Background()
			if _, err := db.conn.ExecContext(ctx, "TRUNCATE "+db.table()); err != nil {
				t.Fatalf("truncate: %v", err)
			}
			insertFixtures(t, db, twentyFiveRows())

			page, err := db.QueryRecords(ctx, mustFilter(t, "startDate=2025-01-10&endDate=2025-01-20&clubs=Beta"),
				query.NewSort("hands", "desc"), query.Page{Page: 1, Limit: 2})
			if err != nil {
				t.Fatalf("QueryRecords: %v", err)
			}
			// Beta rows between the 10th and 20th: 11, 14, 17, 20.
			if page.Total != 4 {
				t.Errorf("Total = %d, want 4", page.Total)
			}
			if len(page.Records) != 2 || page.Records[0].Dia.String() != "2025-01-20" {
				t.Errorf("unexpected first page: %+v", page.Records)
			}

			m, err := db.QueryMetrics(ctx, query.Filter{})
			if err != nil {
				t.Fatalf("QueryMetrics: %v", err)
			}
			if m.TotalHands != 325 {
				t.Errorf("TotalHands = %d, want 325", m.TotalHands)
			}

			opts, err := db.FilterOptions(ctx)
			if err != nil {
				t.Fatalf("FilterOptions: %v", err)
			}
			if len(opts.Clubs) != 3 || opts.DateRange.Max.String() != "2025-01-25" {
				t.Errorf("unexpected options: %+v", opts)
			}
		})
	}
}
