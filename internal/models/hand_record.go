// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func init() {
	// Currency values are JSON numbers on the wire, as the dashboard expects.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the wire format of Day.
const DateLayout = "2006-01-02"

// HandRecord is one row of the bpd table: a player's aggregate for one day
// at one club under one agent.
//
// db tags are the space-free aliases produced by query.SelectList. JSON keys
// keep the leading space of the stored column names because the dashboard
// table reads rows by those keys (row[" playerName"]).
//
// Example:
//
//	{
//	  " dia": "2025-01-15",
//	  " club": "Royal Flush",
//	  " playerName": "player1",
//	  " hands": 1240,
//	  " realWins": -35.5
//	}
type HandRecord struct {
	Dia            Day                 `db:"dia" json:" dia"`
	Reference      *string             `db:"reference" json:" reference"`
	Share          *string             `db:"share" json:" share"`
	Moeda          *string             `db:"moeda" json:" moeda"`
	Upline         *string             `db:"upline" json:" upline"`
	Club           *string             `db:"club" json:" club"`
	PlayerID       *string             `db:"playerID" json:" playerID"`
	PlayerName     *string             `db:"playerName" json:" playerName"`
	AgentName      *string             `db:"agentName" json:" agentName"`
	AgentID        *string             `db:"agentId" json:" agentId"`
	SuperAgentName *string             `db:"superAgentName" json:" superAgentName"`
	SuperAgentID   *string             `db:"superagentId" json:" superagentId"`
	LocalWins      decimal.NullDecimal `db:"localWins" json:" localWins"`
	LocalFee       decimal.NullDecimal `db:"localFee" json:" localFee"`
	Hands          *int64              `db:"hands" json:" hands"`
	DolarWins      decimal.NullDecimal `db:"dolarWins" json:" dolarWins"`
	DolarFee       decimal.NullDecimal `db:"dolarFee" json:" dolarFee"`
	DolarRakeback  decimal.NullDecimal `db:"dolarRakeback" json:" dolarRakeback"`
	DolarRebate    decimal.NullDecimal `db:"dolarRebate" json:" dolarRebate"`
	RealWins       decimal.NullDecimal `db:"realWins" json:" realWins"`
	RealFee        decimal.NullDecimal `db:"realFee" json:" realFee"`
	RealRakeback   decimal.NullDecimal `db:"realRakeback" json:" realRakeback"`
	RealRebate     decimal.NullDecimal `db:"realRebate" json:" realRebate"`
	RealAgentSett  decimal.NullDecimal `db:"realAgentSett" json:" realAgentSett"`
	DolarAgentSett decimal.NullDecimal `db:"dolarAgentSett" json:" dolarAgentSett"`
	RealRevShare   decimal.NullDecimal `db:"realRevShare" json:" realRevShare"`
	RealBPFProfit  decimal.NullDecimal `db:"realBPFProfit" json:" realBPFProfit"`
	Deal           *string             `db:"deal" json:" deal"`
	Rebate         decimal.NullDecimal `db:"rebate" json:" rebate"`
}

// Day is a calendar date read from a DATE column. Drivers disagree on how a
// DATE arrives (time.Time from duckdb, pgx and mysql with parseTime, text
// from sqlite3), so Scan accepts all of them. The zero Day is NULL.
type Day struct {
	time.Time
}

// NewDay returns the Day of t in UTC.
func NewDay(t time.Time) Day {
	return Day{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Scan implements sql.Scanner.
func (d *Day) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		*d = NewDay(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("day: cannot scan %T", src)
	}
}

func (d *Day) parse(s string) error {
	if len(s) >= len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("day: %w", err)
	}
	d.Time = t
	return nil
}

// String returns the date as YYYY-MM-DD, or "" when unset.
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON writes "YYYY-MM-DD", or null when unset.
func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON accepts "YYYY-MM-DD" or null.
func (d *Day) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("day: %w", err)
	}
	return d.parse(s)
}
