// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

/*
Package config loads and validates BPD Dashboard configuration.

# Configuration Sources

Values are layered, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml, /etc/bpd-dashboard/config.yaml
 3. A .env file ($DOTENV_PATH or ./.env), which only fills variables that are
    not already set in the process environment
 4. Environment variables

Only the environment variables listed in envTransformFunc are read; anything
else in the environment is ignored.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default 3001), SERVER_TIMEOUT, ENVIRONMENT

Database:
  - DB_DRIVER: duckdb (default), mysql, postgres, pgx, sqlite3
  - DUCKDB_PATH: file for duckdb/sqlite3 (":memory:" for an in-memory store)
  - DB_DSN: full driver DSN, overrides the host fields
  - DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME
  - DUCKDB_MAX_MEMORY, DUCKDB_THREADS, DB_MAX_OPEN_CONNS, DB_QUERY_TIMEOUT
  - SEED_MOCK_DATA: load development rows into an empty bpd table

API:
  - API_DEFAULT_PAGE_SIZE (default 50), API_MAX_PAGE_SIZE (default 100, at most 100)
  - API_CACHE_TTL: filters and players cache lifetime (default 30s, 0 disables)

Security:
  - AUTH_MODE: jwt (default) or none
  - JWT_SECRET: at least 32 characters when AUTH_MODE=jwt
  - SESSION_TIMEOUT: token lifetime (default 24h)
  - ADMIN_USERNAME, ADMIN_PASSWORD: extra admin account
  - SEED_DEFAULT_USERS: development accounts admin, player1, player2
    (default true unless ENVIRONMENT=production)
  - CORS_ORIGINS, TRUSTED_PROXIES: comma-separated lists
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    return err
	}
	db, err := database.New(&cfg.Database)
*/
package config
