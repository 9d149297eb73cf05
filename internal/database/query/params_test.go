// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package query

import (
	"errors"
	"math"
	"net/url"
	"reflect"
	"testing"
	"time"
)

func TestParseFilter(t *testing.T) {
	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	jan31 := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		query   string
		want    Filter
		wantErr string
	}{
		{
			name:  "empty",
			query: "",
			want:  Filter{},
		},
		{
			name:  "date range",
			query: "startDate=2025-01-01&endDate=2025-01-31",
			want:  Filter{StartDate: &jan1, EndDate: &jan31},
		},
		{
			name:  "timestamp truncated to date",
			query: "startDate=2025-01-01T18:30:00Z",
			want:  Filter{StartDate: &jan1},
		},
		{
			name:  "lists trimmed and empties dropped",
			query: "clubs=" + url.QueryEscape(" Alpha , ,Beta") + "&agents=" + url.QueryEscape(",,") + "&players=Bob",
			want:  Filter{Clubs: []string{"Alpha", "Beta"}, Players: []string{"Bob"}},
		},
		{
			name:  "search and legacy player trimmed",
			query: "search=+ace+&playerName=Alice",
			want:  Filter{Search: "ace", PlayerName: "Alice"},
		},
		{
			name:    "invalid start date",
			query:   "startDate=yesterday",
			wantErr: "startDate",
		},
		{
			name:    "invalid end date",
			query:   "endDate=2025-13-40",
			wantErr: "endDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			got, err := ParseFilter(values)
			if tt.wantErr != "" {
				var pe *ParamError
				if !errors.As(err, &pe) {
					t.Fatalf("expected *ParamError, got %v", err)
				}
				if pe.Param != tt.wantErr {
					t.Errorf("ParamError.Param = %q, want %q", pe.Param, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFilter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFilter_IsEmpty(t *testing.T) {
	if f := (Filter{}); !f.IsEmpty() {
		t.Error("zero Filter should be empty")
	}
	if f := (Filter{Search: "x"}); f.IsEmpty() {
		t.Error("Filter with search should not be empty")
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"", 1, 50, 0},
		{"page=2&limit=10", 2, 10, 10},
		{"page=0", 1, 50, 0},
		{"page=-4", 1, 50, 0},
		{"page=abc&limit=xyz", 1, 50, 0},
		{"limit=0", 1, 1, 0},
		{"limit=-5", 1, 1, 0},
		{"limit=1000", 1, 100, 0},
		{"page=3&limit=25rows", 3, 25, 50},
		{"page=99999999999999999999999", math.MaxInt32/50 + 1, 50, math.MaxInt32 / 50 * 50},
		{"page=99999999999999999999999&limit=7", math.MaxInt32/7 + 1, 7, math.MaxInt32 / 7 * 7},
		{"page=42949673&limit=50", 42949673, 50, 2147483600},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			p := ParsePage(values, DefaultPageBounds)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit {
				t.Errorf("ParsePage(%q) = %+v, want page=%d limit=%d", tt.query, p, tt.wantPage, tt.wantLimit)
			}
			if p.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", p.Offset(), tt.wantOffset)
			}
			if p.Offset() < 0 || p.Offset() > math.MaxInt32 {
				t.Errorf("Offset() = %d out of range", p.Offset())
			}
		})
	}
}

func TestParsePage_CustomBounds(t *testing.T) {
	values, _ := url.ParseQuery("limit=500")
	p := ParsePage(values, PageBounds{DefaultLimit: 20, MaxLimit: 80})
	if p.Limit != 80 {
		t.Errorf("Limit = %d, want 80", p.Limit)
	}

	p = ParsePage(url.Values{}, PageBounds{DefaultLimit: 20, MaxLimit: 80})
	if p.Limit != 20 {
		t.Errorf("Limit = %d, want 20", p.Limit)
	}

	// A MaxLimit above MaxPageSize is ignored.
	p = ParsePage(values, PageBounds{DefaultLimit: 20, MaxLimit: 1000})
	if p.Limit != MaxPageSize {
		t.Errorf("Limit = %d, want %d", p.Limit, MaxPageSize)
	}
}

func TestPage_TotalPagesAndLimitOffset(t *testing.T) {
	p := Page{Page: 2, Limit: 10}
	if got := p.TotalPages(25); got != 3 {
		t.Errorf("TotalPages(25) = %d, want 3", got)
	}
	if got := p.TotalPages(0); got != 0 {
		t.Errorf("TotalPages(0) = %d, want 0", got)
	}
	if got := p.TotalPages(20); got != 2 {
		t.Errorf("TotalPages(20) = %d, want 2", got)
	}
	if got := p.LimitOffset(); got != "LIMIT 10 OFFSET 10" {
		t.Errorf("LimitOffset() = %q", got)
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantField string
		wantCol   string
		wantDir   string
	}{
		{"default", "", "dia", ColDia, "DESC"},
		{"leading space encoded as plus", "sortField=+hands&sortDirection=asc", "hands", ColHands, "ASC"},
		{"leading space percent encoded", "sortField=%20realWins&sortDirection=ASC", "realWins", ColRealWins, "ASC"},
		{"day alias", "sortField=day&sortDirection=desc", "dia", ColDia, "DESC"},
		{"unknown direction is desc", "sortField=club&sortDirection=sideways", "club", ColClub, "DESC"},
		{"injection falls back", "sortField=" + url.QueryEscape(`hands"; DROP TABLE bpd; --`), "dia", ColDia, "DESC"},
		{"case sensitive", "sortField=PLAYERNAME", "dia", ColDia, "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			s := ParseSort(values)
			if s.Field != tt.wantField || s.Column != tt.wantCol || s.Direction() != tt.wantDir {
				t.Errorf("ParseSort(%q) = %+v (%s), want %s/%q/%s", tt.query, s, s.Direction(), tt.wantField, tt.wantCol, tt.wantDir)
			}
		})
	}
}

func TestSort_OrderBy(t *testing.T) {
	s := NewSort("hands", "asc")
	if got, want := s.OrderBy(DuckDB), `ORDER BY " hands" ASC`; got != want {
		t.Errorf("OrderBy = %q, want %q", got, want)
	}
	if got, want := s.OrderBy(MySQL), "ORDER BY ` hands` ASC"; got != want {
		t.Errorf("OrderBy = %q, want %q", got, want)
	}
	if got, want := (Sort{}).OrderBy(DuckDB), `ORDER BY " dia" ASC`; got != want {
		t.Errorf("zero Sort OrderBy = %q, want %q", got, want)
	}
}
