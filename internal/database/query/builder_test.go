// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package query

import (
	"strings"
	"testing"
	"time"
)

func TestWhereBuilder_Empty(t *testing.T) {
	wb := NewWhereBuilder(DuckDB)

	if !wb.IsEmpty() {
		t.Error("Expected new builder to be empty")
	}
	if wb.Count() != 0 {
		t.Errorf("Expected count 0, got %d", wb.Count())
	}

	whereClause, args := wb.Build()
	if whereClause != "1=1" {
		t.Errorf("Expected '1=1' for empty builder, got %q", whereClause)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}

	prefixed, _ := wb.BuildWithPrefix()
	if prefixed != "" {
		t.Errorf("Expected empty prefix clause, got %q", prefixed)
	}
}

func TestWhereBuilder_AddDateRange(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		dialect   Dialect
		start     *time.Time
		end       *time.Time
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:      "duckdb binds time values",
			dialect:   DuckDB,
			start:     &start,
			end:       &end,
			wantWhere: `" dia" >= ? AND " dia" <= ?`,
			wantArgs:  []interface{}{start, end},
		},
		{
			name:      "mysql binds text dates",
			dialect:   MySQL,
			start:     &start,
			end:       &end,
			wantWhere: "` dia` >= ? AND ` dia` <= ?",
			wantArgs:  []interface{}{"2025-01-01", "2025-01-31"},
		},
		{
			name:      "start only",
			dialect:   Postgres,
			start:     &start,
			wantWhere: `" dia" >= ?`,
			wantArgs:  []interface{}{"2025-01-01"},
		},
		{
			name:      "end only",
			dialect:   SQLite,
			end:       &end,
			wantWhere: `" dia" <= ?`,
			wantArgs:  []interface{}{"2025-01-31"},
		},
		{
			name:      "neither",
			dialect:   DuckDB,
			wantWhere: "1=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := NewWhereBuilder(tt.dialect).AddDateRange(ColDia, tt.start, tt.end)
			where, args := wb.Build()
			if where != tt.wantWhere {
				t.Errorf("Build() where = %q, want %q", where, tt.wantWhere)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("Build() args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("arg[%d] = %v, want %v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestWhereBuilder_AddIn(t *testing.T) {
	wb := NewWhereBuilder(DuckDB)
	clubs := []string{"Alpha", "Beta", "Gamma"}

	wb.AddIn(ColClub, clubs)

	whereClause, args := wb.Build()
	expected := `" club" IN (?, ?, ?)`
	if whereClause != expected {
		t.Errorf("Expected %q, got %q", expected, whereClause)
	}
	if len(args) != 3 {
		t.Fatalf("Expected 3 args, got %d", len(args))
	}
	for i, club := range clubs {
		if args[i] != club {
			t.Errorf("Expected arg[%d] = %q, got %q", i, club, args[i])
		}
	}
}

func TestWhereBuilder_EmptyValuesSkipped(t *testing.T) {
	wb := NewWhereBuilder(DuckDB).
		AddIn(ColClub, nil).
		AddIn(ColAgentName, []string{}).
		AddEquals(ColPlayerName, "").
		AddSearch("").
		AddDateRange(ColDia, nil, nil)

	if !wb.IsEmpty() {
		where, _ := wb.Build()
		t.Errorf("Expected no clauses, got %q", where)
	}
}

func TestWhereBuilder_AddSearch(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		want    string
	}{
		{"duckdb", DuckDB, `(" playerName" = ? OR " agentName" ILIKE ? OR " club" ILIKE ?)`},
		{"postgres", Postgres, `(" playerName" = ? OR " agentName" ILIKE ? OR " club" ILIKE ?)`},
		{"mysql", MySQL, "(` playerName` = ? OR ` agentName` LIKE ? OR ` club` LIKE ?)"},
		{"sqlite", SQLite, `(" playerName" = ? OR " agentName" LIKE ? OR " club" LIKE ?)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := NewWhereBuilder(tt.dialect).AddSearch("ace").Build()
			if where != tt.want {
				t.Errorf("where = %q, want %q", where, tt.want)
			}
			want := []interface{}{"ace", "%ace%", "%ace%"}
			for i := range want {
				if args[i] != want[i] {
					t.Errorf("arg[%d] = %v, want %v", i, args[i], want[i])
				}
			}
		})
	}
}

func TestWhereBuilder_BuildWithPrefix(t *testing.T) {
	wb := NewWhereBuilder(DuckDB).AddEquals(ColPlayerName, "Alice")

	whereClause, args := wb.BuildWithPrefix()
	expected := `WHERE " playerName" = ?`
	if whereClause != expected {
		t.Errorf("Expected %q, got %q", expected, whereClause)
	}
	if len(args) != 1 || args[0] != "Alice" {
		t.Errorf("Unexpected args %v", args)
	}
}

func TestWhereBuilder_Args_ReturnsCopy(t *testing.T) {
	wb := NewWhereBuilder(DuckDB).AddEquals(ColClub, "Alpha")
	args := wb.Args()
	args[0] = "mutated"

	_, built := wb.Build()
	if built[0] != "Alpha" {
		t.Errorf("Args() should not alias builder state, got %v", built[0])
	}
}

func TestDialect_Quote(t *testing.T) {
	tests := []struct {
		dialect Dialect
		ident   string
		want    string
	}{
		{DuckDB, " dia", `" dia"`},
		{MySQL, " dia", "` dia`"},
		{Postgres, `we"ird`, `"we""ird"`},
		{MySQL, "we`ird", "`we``ird`"},
	}

	for _, tt := range tests {
		if got := tt.dialect.Quote(tt.ident); got != tt.want {
			t.Errorf("%s.Quote(%q) = %q, want %q", tt.dialect.Name(), tt.ident, got, tt.want)
		}
	}
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		driver  string
		want    string
		wantErr bool
	}{
		{"duckdb", "duckdb", false},
		{"postgres", "postgres", false},
		{"pgx", "postgres", false},
		{"mysql", "mysql", false},
		{"sqlite3", "sqlite3", false},
		{"oracle", "", true},
	}

	for _, tt := range tests {
		d, err := DialectFor(tt.driver)
		if (err != nil) != tt.wantErr {
			t.Errorf("DialectFor(%q) error = %v, wantErr %v", tt.driver, err, tt.wantErr)
			continue
		}
		if d.Name() != tt.want {
			t.Errorf("DialectFor(%q) = %q, want %q", tt.driver, d.Name(), tt.want)
		}
	}
}

func TestSelectList(t *testing.T) {
	list := SelectList(DuckDB)
	if got, want := list[:len(`" dia" AS "dia"`)], `" dia" AS "dia"`; got != want {
		t.Errorf("SelectList starts with %q, want %q", got, want)
	}
	if len(RecordColumns) != 29 {
		t.Errorf("RecordColumns has %d entries, want 29", len(RecordColumns))
	}
}

func TestDialect_CastIntAndColumnType(t *testing.T) {
	if got := MySQL.CastInt("SUM(x)"); got != "CAST(SUM(x) AS SIGNED)" {
		t.Errorf("MySQL.CastInt = %q", got)
	}
	if got := DuckDB.CastInt("SUM(x)"); got != "CAST(SUM(x) AS BIGINT)" {
		t.Errorf("DuckDB.CastInt = %q", got)
	}
	if got := DuckDB.ColumnType(KindDecimal); got != "DECIMAL(18,4)" {
		t.Errorf("DuckDB decimal type = %q", got)
	}
	if got := Postgres.ColumnType(KindDate); got != "DATE" {
		t.Errorf("Postgres date type = %q", got)
	}
}

func TestDialect_Decimal(t *testing.T) {
	tests := []struct {
		d    Dialect
		want string
	}{
		{DuckDB, `CAST(SUM(x) AS VARCHAR)`},
		{Postgres, `SUM(x)`},
		{MySQL, `SUM(x)`},
		{SQLite, `SUM(x)`},
	}
	for _, tt := range tests {
		if got := tt.d.Decimal("SUM(x)"); got != tt.want {
			t.Errorf("%s.Decimal = %q, want %q", tt.d.Name(), got, tt.want)
		}
	}

	list := SelectList(DuckDB)
	if !strings.Contains(list, `CAST(" realWins" AS VARCHAR) AS "realWins"`) {
		t.Errorf("DuckDB select list does not read money as text: %s", list)
	}
	if strings.Contains(list, `CAST(" hands"`) {
		t.Errorf("integer column wrapped: %s", list)
	}
}
