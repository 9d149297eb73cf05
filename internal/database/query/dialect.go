// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package query

import (
	"fmt"
	"strings"
	"time"
)

// Dialect captures the SQL differences between the supported engines that
// matter to the bpd queries.
type Dialect struct {
	name      string
	quote     byte
	like      string
	textDates bool
	decimalAs string    // CAST target when the driver cannot scan DECIMAL
	intType   string    // CAST target for integer aggregates
	types     [4]string // column DDL types indexed by Kind
}

var (
	// DuckDB is the embedded default store. Its driver returns DECIMAL as a
	// struct that shopspring/decimal cannot scan, so money is read as text.
	DuckDB = Dialect{
		name: "duckdb", quote: '"', like: "ILIKE", decimalAs: "VARCHAR", intType: "BIGINT",
		types: [4]string{"VARCHAR", "DATE", "BIGINT", "DECIMAL(18,4)"},
	}

	// Postgres covers both lib/pq and pgx. Dates are sent as text so the
	// server types them as DATE instead of a zoned timestamp.
	Postgres = Dialect{
		name: "postgres", quote: '"', like: "ILIKE", textDates: true, intType: "BIGINT",
		types: [4]string{"TEXT", "DATE", "BIGINT", "NUMERIC(18,4)"},
	}

	// MySQL is the engine of the production dashboard database.
	MySQL = Dialect{
		name: "mysql", quote: '`', like: "LIKE", textDates: true, intType: "SIGNED",
		types: [4]string{"VARCHAR(255)", "DATE", "BIGINT", "DECIMAL(18,4)"},
	}

	// SQLite stores DATE columns as ISO-8601 text.
	SQLite = Dialect{
		name: "sqlite3", quote: '"', like: "LIKE", textDates: true, intType: "INTEGER",
		types: [4]string{"TEXT", "DATE", "INTEGER", "REAL"},
	}
)

// DialectFor returns the dialect for a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "duckdb":
		return DuckDB, nil
	case "postgres", "pgx":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	case "sqlite3":
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported driver %q", driver)
	}
}

// Name returns the dialect name.
func (d Dialect) Name() string {
	return d.name
}

// Quote returns ident as a quoted identifier, doubling any embedded quote
// character. Leading and trailing spaces are preserved.
func (d Dialect) Quote(ident string) string {
	q := string(d.quote)
	return q + strings.ReplaceAll(ident, q, q+q) + q
}

// Like returns the case-insensitive pattern match operator.
func (d Dialect) Like() string {
	return d.like
}

// DateArg converts a calendar date to the bound value compared against the
// dia column.
func (d Dialect) DateArg(t time.Time) interface{} {
	if d.textDates {
		return t.Format(DateLayout)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CastInt wraps expr in a cast to the dialect's 64-bit integer type. SUM over
// an integer column widens on most engines (HUGEINT, NUMERIC, DECIMAL).
func (d Dialect) CastInt(expr string) string {
	return "CAST(" + expr + " AS " + d.intType + ")"
}

// Decimal wraps a money expression so its value scans into decimal.Decimal
// without passing through float64.
func (d Dialect) Decimal(expr string) string {
	if d.decimalAs == "" {
		return expr
	}
	return "CAST(" + expr + " AS " + d.decimalAs + ")"
}

// ColumnType returns the DDL type used for a column of kind k.
func (d Dialect) ColumnType(k Kind) string {
	return d.types[k]
}
