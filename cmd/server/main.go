// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelmaino/bpd-dashboard/internal/api"
	"github.com/marcelmaino/bpd-dashboard/internal/auth"
	"github.com/marcelmaino/bpd-dashboard/internal/config"
	"github.com/marcelmaino/bpd-dashboard/internal/database"
	"github.com/marcelmaino/bpd-dashboard/internal/logging"
	"github.com/marcelmaino/bpd-dashboard/internal/metrics"
	"github.com/marcelmaino/bpd-dashboard/internal/supervisor"
	"github.com/marcelmaino/bpd-dashboard/internal/supervisor/services"
)

// version is set at build time: -ldflags "-X main.version=v1.2.3".
var version = "dev"

// metricsInterval is how often uptime and pool gauges are refreshed.
const metricsInterval = 15 * time.Second

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires the application and blocks until SIGINT/SIGTERM. Deferred
// cleanups run in reverse order of construction.
func run(cfg *config.Config) error {
	startTime := time.Now()

	logging.Info().
		Str("version", version).
		Str("driver", cfg.Database.Driver).
		Str("auth_mode", cfg.Security.AuthMode).
		Str("environment", cfg.Server.Environment).
		Msg("Starting BPD dashboard backend")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Str("driver", db.Driver()).Msg("Database initialized successfully")

	if cfg.Database.SeedMockData {
		logging.Info().Msg("Mock data seeding enabled (SEED_MOCK_DATA=true)")
		inserted, err := db.SeedMockData(context.Background())
		if err != nil {
			return fmt.Errorf("seed mock data: %w", err)
		}
		if inserted == 0 {
			logging.Info().Msg("bpd table already has data, seeding skipped")
		}
	}

	users, err := auth.NewMemoryUserStore(&cfg.Security)
	if err != nil {
		return fmt.Errorf("initialize users: %w", err)
	}
	logging.Info().Int("users", users.Len()).Msg("User store initialized")

	var jwtManager *auth.JWTManager
	if cfg.Security.JWTSecret != "" {
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			return fmt.Errorf("initialize JWT manager: %w", err)
		}
	} else {
		logging.Warn().Msg("JWT_SECRET not set, login will not issue tokens")
	}

	authMW := auth.NewMiddleware(jwtManager, &cfg.Security)
	defer authMW.Stop()

	handler := api.NewHandler(db, users, jwtManager, authMW, cfg, version)
	defer handler.Close()

	router := api.NewRouter(handler, authMW, cfg)

	metrics.SetAppInfo(version, db.Driver())

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// sutureslog only speaks slog; the adapter routes it into zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddBackgroundService(services.NewMetricsCollectorService(db.Conn(), startTime, metricsInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The tree only returns once ctx is canceled.
	serveErr := <-errCh
	if errors.Is(serveErr, context.Canceled) {
		serveErr = nil
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	return serveErr
}
