// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

// Package cache holds short-lived results of dashboard aggregate queries.
//
// The dashboard polls /api/dashboard/filters and the metrics endpoints with
// the same parameters from every open browser tab. Those queries scan the
// whole bpd table, so their results are kept for API_CACHE_TTL (default 30s;
// 0 disables caching). Metrics keys come from GenerateKey over the parsed
// filter, so requests that parse to the same filter share one entry whatever
// the order of their query parameters. Close-time counters come from
// GetStats and HitRate.
//
// Usage:
//
//	c := cache.New("dashboard", 30*time.Second)
//	defer c.Close()
//
//	key := cache.GenerateKey("metrics", filter)
//	if v, ok := c.Get(key); ok {
//	    return v.(*models.Metrics), nil
//	}
//	m, err := db.QueryMetrics(ctx, filter)
//	if err == nil {
//	    c.Set(key, m)
//	}
//
// Handler.ClearCache drops every entry.
package cache
