// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// PostgresImage is the server version the dashboard is tested against.
	PostgresImage = "postgres:16-alpine"

	postgresDatabase = "bpd"
	postgresUser     = "bpd"
	postgresPassword = "bpd-test"
)

// PostgresContainer is a throwaway PostgreSQL server.
type PostgresContainer struct {
	*postgres.PostgresContainer

	// DSN is a postgres:// URL with sslmode=disable.
	DSN string
}

// NewPostgresContainer starts PostgreSQL and waits until it accepts
// connections. The container is terminated when the test finishes.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, err := postgres.Run(ctx,
		PostgresImage,
		postgres.WithDatabase(postgresDatabase),
		postgres.WithUsername(postgresUser),
		postgres.WithPassword(postgresPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if pg != nil {
		t.Cleanup(func() { CleanupContainer(t, pg) })
	}
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	return &PostgresContainer{PostgresContainer: pg, DSN: dsn}
}

// String identifies the container in test logs.
func (c *PostgresContainer) String() string {
	return fmt.Sprintf("postgres(%s)", c.GetContainerID())
}
