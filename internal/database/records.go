// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
	"github.com/marcelmaino/bpd-dashboard/internal/models"
)

// QueryRecords returns one page of hand records matching f, ordered by s.
//
// Two queries share the same predicate: a COUNT(*) for the full result size
// and the page itself. LIMIT and OFFSET come from a validated query.Page and
// are the only values rendered into the SQL text.
func (db *DB) QueryRecords(ctx context.Context, f query.Filter, s query.Sort, p query.Page) (*models.RecordPage, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	d := db.dialect
	where, args := query.BuildPredicate(d, f).Build()

	countSQL := db.conn.Rebind("SELECT COUNT(*) FROM " + db.table() + " WHERE " + where)

	var total int64
	err := db.execute(ctx, "count", func(ctx context.Context) error {
		return db.conn.GetContext(ctx, &total, countSQL, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	pageSQL := db.conn.Rebind(fmt.Sprintf("SELECT %s FROM %s WHERE %s %s %s",
		query.SelectList(d), db.table(), where, s.OrderBy(d), p.LimitOffset()))

	records := make([]models.HandRecord, 0, p.Limit)
	err = db.execute(ctx, "page", func(ctx context.Context) error {
		return db.conn.SelectContext(ctx, &records, pageSQL, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}

	return &models.RecordPage{Records: records, Total: total}, nil
}

// QueryMetrics computes the dashboard summary for f with four sequential
// aggregates over the same predicate. Empty selections yield zeros.
func (db *DB) QueryMetrics(ctx context.Context, f query.Filter) (*models.Metrics, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	d := db.dialect
	where, args := query.BuildPredicate(d, f).Build()
	from := " FROM " + db.table() + " WHERE " + where
	hands := d.Quote(query.ColHands)
	realWins := d.Quote(query.ColRealWins)

	var totalHands sql.NullInt64
	handsSQL := db.conn.Rebind("SELECT " + d.CastInt("SUM("+hands+")") + from)
	if err := db.execute(ctx, "metrics", func(ctx context.Context) error {
		return db.conn.GetContext(ctx, &totalHands, handsSQL, args...)
	}); err != nil {
		return nil, fmt.Errorf("failed to sum hands: %w", err)
	}

	var totalWinnings decimal.NullDecimal
	winningsSQL := db.conn.Rebind("SELECT " + d.Decimal("SUM("+realWins+")") + from)
	if err := db.execute(ctx, "metrics", func(ctx context.Context) error {
		return db.conn.GetContext(ctx, &totalWinnings, winningsSQL, args...)
	}); err != nil {
		return nil, fmt.Errorf("failed to sum winnings: %w", err)
	}

	var avgWins decimal.NullDecimal
	avgSQL := db.conn.Rebind("SELECT " + d.Decimal("AVG("+realWins+")") + from)
	if err := db.execute(ctx, "metrics", func(ctx context.Context) error {
		return db.conn.GetContext(ctx, &avgWins, avgSQL, args...)
	}); err != nil {
		return nil, fmt.Errorf("failed to average winnings: %w", err)
	}

	var wins, count int64
	winRateSQL := db.conn.Rebind("SELECT COUNT(CASE WHEN " + realWins + " > 0 THEN 1 END), COUNT(*)" + from)
	if err := db.execute(ctx, "metrics", func(ctx context.Context) error {
		return db.conn.QueryRowxContext(ctx, winRateSQL, args...).Scan(&wins, &count)
	}); err != nil {
		return nil, fmt.Errorf("failed to count wins: %w", err)
	}

	return assembleMetrics(totalHands, totalWinnings, avgWins, wins, count), nil
}

// assembleMetrics derives the card values. Rounding is half away from zero,
// so an average of -2.5 gives -3.
func assembleMetrics(totalHands sql.NullInt64, totalWinnings, avgWins decimal.NullDecimal, wins, count int64) *models.Metrics {
	m := &models.Metrics{TotalWinnings: decimal.Zero}
	if totalHands.Valid {
		m.TotalHands = totalHands.Int64
	}
	if totalWinnings.Valid {
		m.TotalWinnings = totalWinnings.Decimal
	}
	if avgWins.Valid {
		m.AvgPot = avgWins.Decimal.Round(0).IntPart()
	}
	if count > 0 {
		m.WinRate = decimal.NewFromInt(wins).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(count)).
			Round(0).
			IntPart()
	}
	return m
}
