// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

// Package query turns dashboard query strings into parameterized SQL for the
// bpd table.
//
// # Overview
//
// A request goes through three steps, all free of I/O so they can be tested
// without a database:
//
//  1. Parse: ParseFilter, ParsePage, and ParseSort normalize raw url.Values.
//  2. Build: BuildPredicate turns a Filter into a WhereBuilder whose clauses
//     are AND-joined, starting from "1=1".
//  3. Render: Build returns the clause text and the bound arguments in
//     placeholder order; Sort.OrderBy and Page.LimitOffset render the tail.
//
//	f, err := query.ParseFilter(r.URL.Query())
//	if err != nil {
//	    // *query.ParamError, report as 400
//	}
//	where, args := query.BuildPredicate(query.DuckDB, f).Build()
//	sql := "SELECT COUNT(*) FROM bpd WHERE " + where
//
// # Identifiers
//
// Every column of the bpd table is stored with a leading space (" dia",
// " playerName", ...). Column names are only ever taken from the constants in
// columns.go and quoted by the Dialect; request input never becomes an
// identifier. Sort fields are resolved by exact allow-list lookup.
//
// # Placeholders
//
// Clauses always use "?". Drivers with numbered placeholders rebind the
// final statement (sqlx.Rebind) before execution.
//
// # Argument Order
//
// BuildPredicate appends clauses in a fixed order: start date, end date,
// legacy player name, search (three arguments), clubs, agents, players.
// Positional binding depends on this order.
package query
