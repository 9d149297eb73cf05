// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

/*
Package services adapts the dashboard's long-running components to
suture.Service so the supervisor tree can start, restart and stop them.

  - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
  - MetricsCollectorService: refreshes uptime and connection pool gauges

Every service returns ctx.Err() when its context is canceled and names
itself through String() for supervisor events.
*/
package services
