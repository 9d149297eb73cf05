// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package database

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcelmaino/bpd-dashboard/internal/database/query"
	"github.com/marcelmaino/bpd-dashboard/internal/logging"
	"github.com/marcelmaino/bpd-dashboard/internal/metrics"
)

// SeedDays is the number of days of mock history, ending today.
const SeedDays = 60

type seedAgent struct {
	name, id, superName, superID string
}

type seedPlayer struct {
	name, id, club string
	agent          seedAgent
	currency       string
	skill          float64 // mean result per hand, in local currency
}

var (
	seedClubs = []string{"Royal Flush", "Full House", "River Kings", "Pocket Aces", "Blind Stealers"}

	seedAgents = []seedAgent{
		{"Agent Silva", "AG001", "Super Norte", "SA01"},
		{"Agent Costa", "AG002", "Super Norte", "SA01"},
		{"Agent Souza", "AG003", "Super Sul", "SA02"},
		{"Agent Lima", "AG004", "Super Sul", "SA02"},
	}

	seedPlayerNames = []string{
		"player1", "player2", "Ana", "Bruno", "Carla", "Diego",
		"Elisa", "Fabio", "Gabi", "Heitor", "Iris", "Joao",
	}
)

// SeedMockData fills an empty bpd table with deterministic development data:
// every player belongs to one club and agent and plays on most of the last
// SeedDays days. It returns the number of rows inserted, 0 when the table
// already has data.
func (db *DB) SeedMockData(ctx context.Context) (int, error) {
	count, err := db.RowCount(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logging.Info().Int64("rows", count).Msg("bpd table is not empty, skipping mock data")
		return 0, nil
	}

	logging.Info().Int("days", SeedDays).Msg("Seeding bpd table with mock data...")

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	rows := mockRows(time.Now().UTC(), rand.New(rand.NewSource(42))) //nolint:gosec // development data

	d := db.dialect
	names := make([]string, len(query.RecordColumns))
	placeholders := make([]string, len(query.RecordColumns))
	for i, c := range query.RecordColumns {
		names[i] = d.Quote(c.Name)
		placeholders[i] = "?"
	}
	insertSQL := db.conn.Rebind(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		db.table(), strings.Join(names, ", "), strings.Join(placeholders, ", ")))

	start := time.Now()
	err = db.execute(ctx, "seed", func(ctx context.Context) error {
		tx, err := db.conn.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		stmt, err := tx.PreparexContext(ctx, insertSQL)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer closeWithLog(stmt, "seed statement")

		for _, r := range rows {
			if _, err := stmt.ExecContext(ctx, r.args(d)...); err != nil {
				return fmt.Errorf("failed to insert mock row: %w", err)
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return 0, err
	}

	metrics.DBSeededRows.Add(float64(len(rows)))
	logging.Info().Int("rows", len(rows)).Dur("duration", time.Since(start)).Msg("Mock data seeded")
	return len(rows), nil
}

// mockRow holds one generated record in column order.
type mockRow struct {
	day                        time.Time
	reference, share, currency string
	upline, club               string
	playerID, playerName       string
	agent                      seedAgent
	hands                      int64
	localWins, localFee        decimal.Decimal
	rate                       decimal.Decimal // local currency per dollar
	rakebackPct, rebatePct     decimal.Decimal
	deal                       string
}

// args returns the bound values in query.RecordColumns order.
func (r mockRow) args(d query.Dialect) []interface{} {
	toDollar := func(v decimal.Decimal) float64 {
		return v.Div(r.rate).Round(2).InexactFloat64()
	}
	rakeback := r.localFee.Mul(r.rakebackPct).Round(2)
	rebate := r.localFee.Mul(r.rebatePct).Round(2)
	agentSett := r.localWins.Neg().Sub(r.localFee).Add(rakeback).Round(2)
	revShare := r.localFee.Sub(rakeback).Mul(decimal.RequireFromString("0.5")).Round(2)
	bpfProfit := r.localFee.Sub(rakeback).Sub(rebate).Sub(revShare).Round(2)

	return []interface{}{
		d.DateArg(r.day),
		r.reference,
		r.share,
		r.currency,
		r.upline,
		r.club,
		r.playerID,
		r.playerName,
		r.agent.name,
		r.agent.id,
		r.agent.superName,
		r.agent.superID,
		r.localWins.InexactFloat64(),
		r.localFee.InexactFloat64(),
		r.hands,
		toDollar(r.localWins),
		toDollar(r.localFee),
		toDollar(rakeback),
		toDollar(rebate),
		r.localWins.InexactFloat64(),
		r.localFee.InexactFloat64(),
		rakeback.InexactFloat64(),
		rebate.InexactFloat64(),
		agentSett.InexactFloat64(),
		toDollar(agentSett),
		revShare.InexactFloat64(),
		bpfProfit.InexactFloat64(),
		r.deal,
		rebate.InexactFloat64(),
	}
}

// mockRows generates SeedDays of history ending at today. The same rng seed
// always produces the same rows for the same end date.
func mockRows(today time.Time, rng *rand.Rand) []mockRow {
	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	players := make([]seedPlayer, len(seedPlayerNames))
	for i, name := range seedPlayerNames {
		currency := "BRL"
		if i%4 == 3 {
			currency = "USD"
		}
		players[i] = seedPlayer{
			name:     name,
			id:       fmt.Sprintf("P%04d", 1001+i),
			club:     seedClubs[i%len(seedClubs)],
			agent:    seedAgents[i%len(seedAgents)],
			currency: currency,
			skill:    rng.Float64()*0.6 - 0.3,
		}
	}

	rows := make([]mockRow, 0, SeedDays*len(players))
	for day := SeedDays - 1; day >= 0; day-- {
		date := end.AddDate(0, 0, -day)
		for _, p := range players {
			if rng.Float64() < 0.3 {
				continue
			}

			hands := int64(50 + rng.Intn(950))
			swing := rng.NormFloat64() * 2.5
			wins := decimal.NewFromFloat((p.skill + swing) * float64(hands) / 10).Round(2)
			fee := decimal.NewFromFloat(float64(hands) * (0.08 + rng.Float64()*0.04)).Round(2)

			rate := decimal.NewFromInt(1)
			if p.currency == "BRL" {
				rate = decimal.RequireFromString("5.00")
			}

			rows = append(rows, mockRow{
				day:         date,
				reference:   fmt.Sprintf("REF-%s-%s", date.Format("20060102"), p.id),
				share:       "50%",
				currency:    p.currency,
				upline:      p.agent.superName,
				club:        p.club,
				playerID:    p.id,
				playerName:  p.name,
				agent:       p.agent,
				hands:       hands,
				localWins:   wins,
				localFee:    fee,
				rate:        rate,
				rakebackPct: decimal.RequireFromString("0.30"),
				rebatePct:   decimal.RequireFromString("0.05"),
				deal:        "70/30",
			})
		}
	}
	return rows
}
