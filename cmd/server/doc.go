// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

/*
Package main is the HTTP backend of the BPD poker club dashboard.

It serves daily per-player records from the bpd table together with
aggregate metrics, filter options and player lists, behind JWT login.

# Startup

 1. Configuration: Koanf v2 (defaults, config.yaml, .env, environment)
 2. Logging: zerolog, JSON or console
 3. Database: DuckDB, MySQL, PostgreSQL (lib/pq or pgx) or SQLite
 4. Mock data: optional, only into an empty bpd table (SEED_MOCK_DATA=true)
 5. Authentication: in-memory users, JWT manager, auth middleware
 6. Supervisor tree: HTTP server and metrics collector under suture v4

# Configuration

The most common variables:

	DB_DRIVER=mysql
	DB_HOST=localhost
	DB_USER=bpd
	DB_PASSWORD=secret
	DB_NAME=bpd_database
	JWT_SECRET=$(openssl rand -base64 32)
	HTTP_PORT=3001
	CORS_ORIGINS=http://localhost:5173

See internal/config for the full list.

# Signals

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to 10s, then the database is closed.

# Example

Local development with generated data and no login:

	export DB_DRIVER=duckdb
	export DUCKDB_PATH=./data/bpd.duckdb
	export SEED_MOCK_DATA=true
	export AUTH_MODE=none
	./bpd-server
*/
package main
