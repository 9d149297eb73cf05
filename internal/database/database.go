// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/marcelmaino/bpd-dashboard/internal/config"
	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
	"github.com/marcelmaino/bpd-dashboard/internal/logging"
	"github.com/marcelmaino/bpd-dashboard/internal/metrics"
)

// DB wraps the bpd store connection pool and provides the dashboard queries.
// It is safe for concurrent use.
type DB struct {
	conn    *sqlx.DB
	cfg     *config.DatabaseConfig
	dialect query.Dialect
	breaker *gobreaker.CircuitBreaker[struct{}] // nil when disabled
}

// New opens the store selected by cfg.Driver, verifies the connection, and
// creates the bpd table unless cfg.SkipSchema is set.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	dialect, err := query.DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s DSN: %w", cfg.Driver, err)
	}

	conn, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn:    conn,
		cfg:     cfg,
		dialect: dialect,
	}
	db.configureConnectionPool()

	if cfg.Breaker.Enabled {
		db.breaker = newBreaker(breakerName, cfg.Breaker)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	if !cfg.SkipSchema {
		if err := db.createSchema(pingCtx); err != nil {
			closeQuietly(conn)
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	logging.Info().
		Str("driver", cfg.Driver).
		Str("dialect", dialect.Name()).
		Bool("breaker", cfg.Breaker.Enabled).
		Msg("Database connected")

	return db, nil
}

// Dialect returns the SQL dialect of the store.
func (db *DB) Dialect() query.Dialect {
	return db.dialect
}

// Driver returns the database/sql driver name.
func (db *DB) Driver() string {
	return db.cfg.Driver
}

// Conn returns the underlying connection pool.
func (db *DB) Conn() *sqlx.DB {
	return db.conn
}

// Close closes the connection pool.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	if db.cfg.Driver == config.DriverDuckDB {
		// Flush the WAL so the next start does not replay it.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
			logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
		}
		cancel()
	}
	return db.conn.Close()
}

// Ping checks if the database connection is alive. It bypasses the circuit
// breaker so readiness reflects the store itself.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	err := db.conn.PingContext(ctx)
	metrics.RecordDBQuery("ping", db.cfg.Driver, time.Since(start), err)
	metrics.UpdatePoolStats(db.conn.Stats())
	return err
}
