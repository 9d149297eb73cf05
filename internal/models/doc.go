// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

/*
Package models defines data structures for the BPD Dashboard.

Key Components:

  - HandRecord: One bpd row (player, club, agent, day) with its currency columns
  - Day: Calendar date scanned from any supported driver
  - Metrics, FilterOptions, DateRange: Aggregates behind the dashboard cards and filters
  - Envelopes: RecordsResponse, MetricsResponse, PlayersResponse, FiltersResponse,
    LoginResponse, ValidateResponse, ErrorResponse, HealthResponse

Wire Format:

Row keys keep the leading space of the stored bpd column names (" dia",
" playerName", ...). Currency columns are shopspring/decimal values encoded as
JSON numbers. Dates are "YYYY-MM-DD" strings; a NULL date is null.

Usage Example:

	page, err := db.QueryRecords(ctx, filter, sort, p)
	if err != nil {
	    return err
	}
	resp := models.RecordsResponse{
	    Success:    true,
	    Data:       page.Records,
	    Total:      page.Total,
	    Page:       p.Page,
	    Limit:      p.Limit,
	    TotalPages: p.TotalPages(page.Total),
	}

Thread Safety:

Models are plain values with no internal synchronization.
*/
package models
