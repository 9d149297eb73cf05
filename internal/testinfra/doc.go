// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

//go:build integration

// Package testinfra starts throwaway containers for integration tests.
//
// Everything here sits behind the integration build tag:
//
//	go test -tags integration ./internal/database/...
//
// # PostgreSQL
//
// NewPostgresContainer runs postgres:16-alpine through testcontainers-go and
// returns a DSN the database package accepts for both the postgres (lib/pq)
// and pgx drivers:
//
//	pg := testinfra.NewPostgresContainer(t)
//	db, err := database.New(&config.DatabaseConfig{Driver: "pgx", DSN: pg.DSN})
//
// Tests are skipped when Docker is unavailable. The first run pulls the
// image; later runs use the local cache.
package testinfra
