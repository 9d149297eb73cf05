// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

/*
Package database provides read access to the bpd table for the dashboard.

The store is any database/sql engine the dashboard has been deployed on:
DuckDB (embedded default), MySQL, PostgreSQL through lib/pq or pgx, and
SQLite. Queries are assembled with the query subpackage, which quotes the
leading-space column names for the active dialect, and executed through
jmoiron/sqlx, which rebinds "?" placeholders for drivers that expect $n.

# Operations

  - QueryRecords: COUNT(*) plus one ordered page, sharing one predicate
  - QueryMetrics: total hands, total winnings, average pot, win rate
  - ListPlayers, FilterOptions: distinct values and the dia span
  - SeedMockData: deterministic development rows for an empty table
  - RowCount, Ping: housekeeping and readiness

# Resilience

Every query runs under the caller's context, bounded by database.query_timeout
when the context has no deadline, and through a sony/gobreaker circuit
breaker. While the breaker is open, queries fail fast with ErrCircuitOpen.

# Usage

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	filter, err := query.ParseFilter(r.URL.Query())
	if err != nil {
	    return err
	}
	page, err := db.QueryRecords(ctx, filter, query.ParseSort(r.URL.Query()), query.ParsePage(r.URL.Query(), query.DefaultPageBounds))

# Thread Safety

DB is safe for concurrent use; the connection pool is the only shared state.
*/
package database
