// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
)

const diaIndexName = "idx_bpd_dia"

// createSchema creates the bpd table and its date index when missing.
// Existing tables are left untouched; the dashboard only reads them.
func (db *DB) createSchema(ctx context.Context) error {
	for _, stmt := range db.schemaStatements() {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}

// schemaStatements returns the DDL for the current dialect. MySQL has no
// CREATE INDEX IF NOT EXISTS, so its index is declared inline.
func (db *DB) schemaStatements() []string {
	d := db.dialect

	defs := make([]string, 0, len(query.RecordColumns)+1)
	for _, c := range query.RecordColumns {
		defs = append(defs, d.Quote(c.Name)+" "+d.ColumnType(c.Kind))
	}

	if d.Name() == query.MySQL.Name() {
		defs = append(defs, "INDEX "+diaIndexName+" ("+d.Quote(query.ColDia)+")")
		return []string{
			"CREATE TABLE IF NOT EXISTS " + d.Quote(query.Table) + " (\n\t" + strings.Join(defs, ",\n\t") + "\n)",
		}
	}

	return []string{
		"CREATE TABLE IF NOT EXISTS " + d.Quote(query.Table) + " (\n\t" + strings.Join(defs, ",\n\t") + "\n)",
		"CREATE INDEX IF NOT EXISTS " + diaIndexName + " ON " + d.Quote(query.Table) + " (" + d.Quote(query.ColDia) + ")",
	}
}
