// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package query

// BuildPredicate renders f as a WHERE builder. Every query that shares a
// filter (count, page, aggregates) uses the same predicate, so clause and
// argument order are fixed: start date, end date, legacy player, search,
// clubs, agents, players.
func BuildPredicate(d Dialect, f Filter) *WhereBuilder {
	wb := NewWhereBuilder(d)
	wb.AddDateRange(ColDia, f.StartDate, f.EndDate)
	wb.AddEquals(ColPlayerName, f.PlayerName)
	wb.AddSearch(f.Search)
	wb.AddIn(ColClub, f.Clubs)
	wb.AddIn(ColAgentName, f.Agents)
	wb.AddIn(ColPlayerName, f.Players)
	return wb
}
