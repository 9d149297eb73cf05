// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package query

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format of startDate, endDate, and the
// dateRange returned by the filters endpoint.
const DateLayout = "2006-01-02"

// acceptedDateLayouts are tried in order. Timestamps are truncated to
// their calendar date.
var acceptedDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParamError reports a query parameter that cannot be used.
type ParamError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
}

// Filter is the normalized filter set shared by the data, metrics, and
// discovery queries. Zero values mean "not applied".
type Filter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	PlayerName string // legacy exact-match filter
	Search     string
	Clubs      []string
	Agents     []string
	Players    []string
}

// IsEmpty reports whether no filter is applied.
func (f *Filter) IsEmpty() bool {
	return f.StartDate == nil && f.EndDate == nil && f.PlayerName == "" && f.Search == "" &&
		len(f.Clubs) == 0 && len(f.Agents) == 0 && len(f.Players) == 0
}

// ParseFilter normalizes the filter parameters of a dashboard request.
// Invalid dates are rejected with a *ParamError; every other parameter is
// lenient.
func ParseFilter(values url.Values) (Filter, error) {
	var f Filter
	var err error

	if f.StartDate, err = parseDateParam(values, "startDate"); err != nil {
		return Filter{}, err
	}
	if f.EndDate, err = parseDateParam(values, "endDate"); err != nil {
		return Filter{}, err
	}

	f.PlayerName = strings.TrimSpace(values.Get("playerName"))
	f.Search = strings.TrimSpace(values.Get("search"))
	f.Clubs = SplitList(values.Get("clubs"))
	f.Agents = SplitList(values.Get("agents"))
	f.Players = SplitList(values.Get("players"))

	return f, nil
}

func parseDateParam(values url.Values, name string) (*time.Time, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, nil
	}
	d, err := ParseDate(raw)
	if err != nil {
		return nil, &ParamError{Param: name, Value: raw, Reason: "expected a date in YYYY-MM-DD format"}
	}
	return &d, nil
}

// ParseDate parses a calendar date (or a timestamp, keeping its date part).
// The result is midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range acceptedDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// SplitList splits a comma-separated value, trimming each element and
// dropping empty ones. It returns nil when nothing is left, so an empty
// list is never turned into an IN clause.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// PageBounds configures pagination defaults.
type PageBounds struct {
	DefaultLimit int
	MaxLimit     int
}

// MaxPageSize caps any configured MaxLimit.
const MaxPageSize = 100

// maxOffset bounds (Page-1)*Limit so OFFSET fits every engine's integer.
const maxOffset = math.MaxInt32

// DefaultPageBounds matches the dashboard table: 50 rows, at most 100.
var DefaultPageBounds = PageBounds{DefaultLimit: 50, MaxLimit: MaxPageSize}

// Page is a validated page request. Page >= 1 and 1 <= Limit <= MaxLimit.
type Page struct {
	Page  int
	Limit int
}

// ParsePage reads page and limit. Non-numeric values fall back to the
// defaults; out-of-range values are clamped, so Offset never overflows.
func ParsePage(values url.Values, bounds PageBounds) Page {
	if bounds.MaxLimit < 1 || bounds.MaxLimit > MaxPageSize {
		bounds.MaxLimit = DefaultPageBounds.MaxLimit
	}
	if bounds.DefaultLimit < 1 || bounds.DefaultLimit > bounds.MaxLimit {
		bounds.DefaultLimit = min(DefaultPageBounds.DefaultLimit, bounds.MaxLimit)
	}

	page, ok := leadingInt(values.Get("page"))
	if !ok || page < 1 {
		page = 1
	}

	limit, ok := leadingInt(values.Get("limit"))
	if !ok {
		limit = bounds.DefaultLimit
	}
	limit = max(1, min(bounds.MaxLimit, limit))

	// Pages past maxOffset are empty anyway; capping keeps OFFSET positive.
	page = min(page, maxOffset/limit+1)

	return Page{Page: page, Limit: limit}
}

// leadingInt parses the integer prefix of s ("10", "-3", "25rows"). Clients
// that send "25rows" get 25, not the default.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Overflow: saturate so clamping still applies.
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return n, true
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// LimitOffset renders the LIMIT/OFFSET tail. Both values are validated
// integers, so embedding them as text is safe on every driver.
func (p Page) LimitOffset() string {
	return fmt.Sprintf("LIMIT %d OFFSET %d", p.Limit, p.Offset())
}

// TotalPages returns ceil(total/limit).
func (p Page) TotalPages(total int64) int64 {
	if total <= 0 || p.Limit <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return (total + limit - 1) / limit
}

// sortColumns is the ORDER BY allow-list. Keys are the accepted sortField
// values; "day" is the English alias of "dia".
var sortColumns = map[string]string{
	"dia":        ColDia,
	"day":        ColDia,
	"playerName": ColPlayerName,
	"agentName":  ColAgentName,
	"club":       ColClub,
	"hands":      ColHands,
	"realWins":   ColRealWins,
}

// DefaultSortField is used for any value outside the allow-list.
const DefaultSortField = "dia"

// Sort is a validated ORDER BY request.
type Sort struct {
	Field  string // allow-list key
	Column string // stored column name
	Desc   bool
}

// ParseSort reads sortField and sortDirection. The dashboard sends column
// keys with their leading space ("+dia" once form-encoded), so "+" is
// decoded and the value trimmed before the allow-list lookup.
func ParseSort(values url.Values) Sort {
	return NewSort(values.Get("sortField"), values.Get("sortDirection"))
}

// NewSort resolves a raw field and direction against the allow-list.
func NewSort(rawField, rawDirection string) Sort {
	field := strings.ReplaceAll(rawField, "+", " ")
	if decoded, err := url.QueryUnescape(field); err == nil {
		field = decoded
	}
	field = strings.TrimSpace(field)

	column, ok := sortColumns[field]
	if !ok {
		field = DefaultSortField
		column = sortColumns[DefaultSortField]
	}
	if field == "day" {
		field = DefaultSortField
	}

	return Sort{
		Field:  field,
		Column: column,
		Desc:   !strings.EqualFold(strings.TrimSpace(rawDirection), "asc"),
	}
}

// Direction returns ASC or DESC.
func (s Sort) Direction() string {
	if s.Desc {
		return "DESC"
	}
	return "ASC"
}

// OrderBy renders the ORDER BY clause for d.
func (s Sort) OrderBy(d Dialect) string {
	column := s.Column
	if column == "" {
		column = sortColumns[DefaultSortField]
	}
	return "ORDER BY " + d.Quote(column) + " " + s.Direction()
}
