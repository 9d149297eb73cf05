// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
)

const defaultQueryTimeout = 30 * time.Second

// ensureContext applies the configured query timeout when ctx has no deadline
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := db.cfg.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	if ctx == nil {
		return context.WithTimeout(context.Background(), timeout)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	return ctx, func() {}
}

// table returns the quoted bpd table name.
func (db *DB) table() string {
	return db.dialect.Quote(query.Table)
}

// RowCount returns the number of rows in the bpd table.
func (db *DB) RowCount(ctx context.Context) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var n int64
	err := db.execute(ctx, "row_count", func(ctx context.Context) error {
		return db.conn.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+db.table())
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count bpd rows: %w", err)
	}
	return n, nil
}
