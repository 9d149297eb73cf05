// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/marcelmaino/bpd-dashboard/internal/metrics"
)

// PoolStatser reports connection pool statistics. *sql.DB and *sqlx.DB
// satisfy it.
type PoolStatser interface {
	Stats() sql.DBStats
}

// MetricsCollectorService refreshes the gauges that no request path
// updates: app_uptime_seconds and the bpd_db_connections_* pair.
type MetricsCollectorService struct {
	pool     PoolStatser
	start    time.Time
	interval time.Duration
	name     string
}

// NewMetricsCollectorService creates a collector ticking every interval
// (15s when non-positive). pool may be nil.
func NewMetricsCollectorService(pool PoolStatser, start time.Time, interval time.Duration) *MetricsCollectorService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &MetricsCollectorService{
		pool:     pool,
		start:    start,
		interval: interval,
		name:     "metrics-collector",
	}
}

// Serve implements suture.Service. It collects once immediately, then on
// every tick until ctx is canceled.
func (m *MetricsCollectorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.collect()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.collect()
		}
	}
}

func (m *MetricsCollectorService) collect() {
	metrics.UpdateUptime(m.start)
	if m.pool != nil {
		metrics.UpdatePoolStats(m.pool.Stats())
	}
}

// String names the service in supervisor events.
func (m *MetricsCollectorService) String() string {
	return m.name
}
