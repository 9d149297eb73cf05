// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func TestDay_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    string
		wantErr bool
	}{
		{"nil", nil, "", false},
		{"time", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "2025-01-15", false},
		{"time with zone keeps calendar day", time.Date(2025, 1, 15, 23, 0, 0, 0, time.FixedZone("BRT", -3*3600)), "2025-01-15", false},
		{"string", "2025-02-01", "2025-02-01", false},
		{"bytes", []byte("2025-02-01"), "2025-02-01", false},
		{"datetime text", "2025-02-01 00:00:00", "2025-02-01", false},
		{"garbage", "soon", "", true},
		{"unsupported type", 42, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Day
			err := d.Scan(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan(%v) error = %v, wantErr %v", tt.src, err, tt.wantErr)
			}
			if err == nil && d.String() != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.src, d.String(), tt.want)
			}
		})
	}
}

func TestDay_JSON(t *testing.T) {
	data, err := json.Marshal(DateRange{Min: NewDay(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(data), `{"min":"2025-01-01","max":null}`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}

	var r DateRange
	if err := json.Unmarshal([]byte(`{"min":"2025-03-04","max":null}`), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.Min.String() != "2025-03-04" || !r.Max.IsZero() {
		t.Errorf("Unmarshal = %+v", r)
	}
}

func TestHandRecord_JSONKeysKeepLeadingSpace(t *testing.T) {
	rec := HandRecord{
		Dia:        NewDay(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
		Club:       strPtr("Royal Flush"),
		PlayerName: strPtr("player1"),
		Hands:      int64Ptr(1240),
		RealWins:   decimal.NewNullDecimal(decimal.RequireFromString("-35.50")),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		`" dia":"2025-01-15"`,
		`" club":"Royal Flush"`,
		`" playerName":"player1"`,
		`" hands":1240`,
		`" realWins":-35.5`,
		`" agentName":null`,
		`" dolarWins":null`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestMetrics_JSON(t *testing.T) {
	m := Metrics{TotalHands: 300, TotalWinnings: decimal.RequireFromString("125.25"), AvgPot: 42, WinRate: 67}

	data, err := json.Marshal(MetricsResponse{Success: true, Metrics: &m})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"success":true,"metrics":{"totalHands":300,"totalWinnings":125.25,"avgPot":42,"winRate":67}}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestLoginRequest_Normalize(t *testing.T) {
	r := LoginRequest{PlayerName: "player1", Password: "x"}
	r.Normalize()
	if r.Username != "player1" {
		t.Errorf("Username = %q, want player1", r.Username)
	}

	r = LoginRequest{Username: "admin", PlayerName: "player1"}
	r.Normalize()
	if r.Username != "admin" {
		t.Errorf("Username = %q, want admin", r.Username)
	}
}
