// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcelmaino/bpd-dashboard/internal/auth"
	"github.com/marcelmaino/bpd-dashboard/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}
	cmd.AddCommand(newConfigCheckCmd())
	return cmd
}

func newConfigCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load and validate configuration, then print a summary",
		Long: `Loads configuration exactly like the server and builds the account
store, so invalid password hashes are reported too. Secrets are never
printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			users, err := auth.NewMemoryUserStore(&cfg.Security)
			if err != nil {
				return fmt.Errorf("invalid accounts: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "database:    %s (%s)\n", cfg.Database.Driver, databaseTarget(&cfg.Database))
			fmt.Fprintf(out, "listen:      %s\n", cfg.Server.Addr())
			fmt.Fprintf(out, "environment: %s\n", cfg.Server.Environment)
			fmt.Fprintf(out, "auth mode:   %s\n", cfg.Security.AuthMode)
			fmt.Fprintf(out, "accounts:    %s\n", accountsSummary(users.Usernames()))
			fmt.Fprintf(out, "cors:        %s\n", strings.Join(cfg.Security.CORSOrigins, ", "))
			fmt.Fprintf(out, "page size:   %d (max %d)\n", cfg.API.DefaultPageSize, cfg.API.MaxPageSize)
			fmt.Fprintln(out, "configuration OK")
			return nil
		},
	}
}

// databaseTarget describes where the store lives without credentials.
func databaseTarget(c *config.DatabaseConfig) string {
	switch {
	case c.IsEmbedded():
		return c.Path
	case c.DSN != "":
		return "dsn"
	default:
		return c.Address() + "/" + c.Name
	}
}

func accountsSummary(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
