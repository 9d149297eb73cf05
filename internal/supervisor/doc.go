// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

/*
Package supervisor runs the dashboard's long-running services under a
suture v4 supervisor tree.

# Layout

	RootSupervisor ("bpd-dashboard")
	├── BackgroundSupervisor ("background-layer")
	│   └── MetricsCollectorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures on its own, so a collector stuck in backoff
leaves the HTTP server running.

# Logging

Supervisor events (service panics, restarts, backoff) are reported through
sutureslog. Pass logging.NewSlogLogger() so they land in the same zerolog
stream as the rest of the application.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddBackgroundService(services.NewMetricsCollectorService(db.Conn(), startTime, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)

Canceling ctx stops every service. UnstoppedServiceReport lists services
that ignored the cancellation past ShutdownTimeout.

See also: internal/supervisor/services for the service wrappers.
*/
package supervisor
