// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package query

import (
	"strings"
	"time"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
// Column names are quoted for its dialect; values are always bound.
//
// Example usage:
//
//	wb := query.NewWhereBuilder(query.DuckDB)
//	wb.AddDateRange(query.ColDia, startDate, endDate)
//	wb.AddIn(query.ColClub, []string{"Alpha", "Beta"})
//	whereClause, args := wb.Build()
//	// " dia" >= ? AND " dia" <= ? AND " club" IN (?, ?)
type WhereBuilder struct {
	dialect Dialect
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder for d.
func NewWhereBuilder(d Dialect) *WhereBuilder {
	return &WhereBuilder{
		dialect: d,
		clauses: []string{},
		args:    []interface{}{},
	}
}

// Dialect returns the dialect the builder quotes for.
func (wb *WhereBuilder) Dialect() Dialect {
	return wb.dialect
}

// AddClause adds a raw WHERE clause with its arguments.
// This is useful for custom conditions not covered by helper methods.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddDateRange adds inclusive start and/or end bounds on a DATE column.
// Nil dates are skipped.
func (wb *WhereBuilder) AddDateRange(column string, startDate, endDate *time.Time) *WhereBuilder {
	col := wb.dialect.Quote(column)
	if startDate != nil {
		wb.AddClause(col+" >= ?", wb.dialect.DateArg(*startDate))
	}
	if endDate != nil {
		wb.AddClause(col+" <= ?", wb.dialect.DateArg(*endDate))
	}
	return wb
}

// AddEquals adds "column = ?". An empty value is skipped.
func (wb *WhereBuilder) AddEquals(column, value string) *WhereBuilder {
	if value == "" {
		return wb
	}
	return wb.AddClause(wb.dialect.Quote(column)+" = ?", value)
}

// AddIn adds "column IN (?, ?, ...)". An empty slice is skipped so the
// builder never renders an empty IN list.
func (wb *WhereBuilder) AddIn(column string, values []string) *WhereBuilder {
	if len(values) == 0 {
		return wb
	}
	placeholders := make([]string, len(values))
	args := make([]interface{}, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		args[i] = v
	}
	return wb.AddClause(wb.dialect.Quote(column)+" IN ("+strings.Join(placeholders, ", ")+")", args...)
}

// AddSearch adds the dashboard free-text search: an exact player match or a
// case-insensitive substring of the agent or club.
//
// Generates:
//   - (" playerName" = ? OR " agentName" ILIKE ? OR " club" ILIKE ?)
func (wb *WhereBuilder) AddSearch(term string) *WhereBuilder {
	if term == "" {
		return wb
	}
	d := wb.dialect
	pattern := "%" + term + "%"
	clause := "(" + d.Quote(ColPlayerName) + " = ? OR " +
		d.Quote(ColAgentName) + " " + d.Like() + " ? OR " +
		d.Quote(ColClub) + " " + d.Like() + " ?)"
	return wb.AddClause(clause, term, pattern, pattern)
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if no clauses were added.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", wb.args
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix returns the clause prefixed with "WHERE ", or an empty
// string when no clauses were added.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "", wb.args
	}
	clause, args := wb.Build()
	return "WHERE " + clause, args
}

// Count returns the number of clauses.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}

// IsEmpty returns true if no clauses have been added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}

// Args returns a copy of the bound arguments in placeholder order.
func (wb *WhereBuilder) Args() []interface{} {
	out := make([]interface{}, len(wb.args))
	copy(out, wb.args)
	return out
}
