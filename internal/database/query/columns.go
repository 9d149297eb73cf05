// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package query

import "strings"

// Table is the only table the dashboard reads.
const Table = "bpd"

// Column names of the bpd table. The leading space is part of the stored
// name and must be kept when quoting.
const (
	ColDia        = " dia"
	ColPlayerName = " playerName"
	ColAgentName  = " agentName"
	ColClub       = " club"
	ColHands      = " hands"
	ColRealWins   = " realWins"
)

// Kind is the storage class of a bpd column.
type Kind int

// Column kinds.
const (
	KindText Kind = iota
	KindDate
	KindInt
	KindDecimal
)

// Column describes one bpd column: its stored name, the alias used when
// scanning rows into models.HandRecord, and its storage class.
type Column struct {
	Name  string
	Alias string
	Kind  Kind
}

// RecordColumns lists every bpd column in table order.
var RecordColumns = []Column{
	{" dia", "dia", KindDate},
	{" reference", "reference", KindText},
	{" share", "share", KindText},
	{" moeda", "moeda", KindText},
	{" upline", "upline", KindText},
	{" club", "club", KindText},
	{" playerID", "playerID", KindText},
	{" playerName", "playerName", KindText},
	{" agentName", "agentName", KindText},
	{" agentId", "agentId", KindText},
	{" superAgentName", "superAgentName", KindText},
	{" superagentId", "superagentId", KindText},
	{" localWins", "localWins", KindDecimal},
	{" localFee", "localFee", KindDecimal},
	{" hands", "hands", KindInt},
	{" dolarWins", "dolarWins", KindDecimal},
	{" dolarFee", "dolarFee", KindDecimal},
	{" dolarRakeback", "dolarRakeback", KindDecimal},
	{" dolarRebate", "dolarRebate", KindDecimal},
	{" realWins", "realWins", KindDecimal},
	{" realFee", "realFee", KindDecimal},
	{" realRakeback", "realRakeback", KindDecimal},
	{" realRebate", "realRebate", KindDecimal},
	{" realAgentSett", "realAgentSett", KindDecimal},
	{" dolarAgentSett", "dolarAgentSett", KindDecimal},
	{" realRevShare", "realRevShare", KindDecimal},
	{" realBPFProfit", "realBPFProfit", KindDecimal},
	{" deal", "deal", KindText},
	{" rebate", "rebate", KindDecimal},
}

// SelectList renders RecordColumns as a select list with quoted aliases, so
// scanned names are case-exact on every engine.
func SelectList(d Dialect) string {
	parts := make([]string, len(RecordColumns))
	for i, c := range RecordColumns {
		col := d.Quote(c.Name)
		if c.Kind == KindDecimal {
			col = d.Decimal(col)
		}
		parts[i] = col + " AS " + d.Quote(c.Alias)
	}
	return strings.Join(parts, ", ")
}
