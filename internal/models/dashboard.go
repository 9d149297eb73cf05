// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package models

import (
	"github.com/shopspring/decimal"
)

// Metrics is the summary shown on the dashboard cards.
//
// AvgPot is the rounded mean of realWins and WinRate the rounded percentage
// of records with positive realWins. Both are 0 for an empty selection.
type Metrics struct {
	TotalHands    int64           `json:"totalHands"`
	TotalWinnings decimal.Decimal `json:"totalWinnings"`
	AvgPot        int64           `json:"avgPot"`
	WinRate       int64           `json:"winRate"`
}

// DateRange is the span of dia values in the table. Both ends are null when
// the table is empty.
type DateRange struct {
	Min Day `json:"min"`
	Max Day `json:"max"`
}

// FilterOptions lists the values offered by the dashboard filter controls.
// Lists are distinct, sorted, and never contain null or empty strings.
type FilterOptions struct {
	Players   []string  `json:"players"`
	Clubs     []string  `json:"clubs"`
	Agents    []string  `json:"agents"`
	DateRange DateRange `json:"dateRange"`
}

// RecordPage is one page of hand records and the size of the full result.
type RecordPage struct {
	Records []HandRecord
	Total   int64
}
