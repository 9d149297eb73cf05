// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package database

import (
	"context"
	"fmt"

	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
	"github.com/marcelmaino/bpd-dashboard/internal/models"
)

// ListPlayers returns the distinct player names, sorted.
func (db *DB) ListPlayers(ctx context.Context) ([]string, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	return db.distinct(ctx, "players", query.ColPlayerName)
}

// FilterOptions returns the values offered by the dashboard filters: distinct
// players, clubs and agents plus the span of dia. It is not filtered.
func (db *DB) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	opts := &models.FilterOptions{}
	var err error

	if opts.Players, err = db.distinct(ctx, "filters", query.ColPlayerName); err != nil {
		return nil, err
	}
	if opts.Clubs, err = db.distinct(ctx, "filters", query.ColClub); err != nil {
		return nil, err
	}
	if opts.Agents, err = db.distinct(ctx, "filters", query.ColAgentName); err != nil {
		return nil, err
	}

	dia := db.dialect.Quote(query.ColDia)
	rangeSQL := "SELECT MIN(" + dia + "), MAX(" + dia + ") FROM " + db.table()
	err = db.execute(ctx, "filters", func(ctx context.Context) error {
		return db.conn.QueryRowxContext(ctx, rangeSQL).Scan(&opts.DateRange.Min, &opts.DateRange.Max)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query date range: %w", err)
	}

	return opts, nil
}

// distinct returns the sorted distinct non-null, non-empty values of column.
func (db *DB) distinct(ctx context.Context, operation, column string) ([]string, error) {
	col := db.dialect.Quote(column)
	stmt := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL AND %s <> '' ORDER BY 1",
		col, db.table(), col, col)

	values := make([]string, 0)
	err := db.execute(ctx, operation, func(ctx context.Context) error {
		return db.conn.SelectContext(ctx, &values, stmt)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct %s: %w", column, err)
	}
	return values, nil
}
