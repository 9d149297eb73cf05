// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcelmaino/bpd-dashboard/internal/config"
	"github.com/marcelmaino/bpd-dashboard/internal/database"
	"github.com/marcelmaino/bpd-dashboard/internal/logging"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty bpd table with development data",
		Long: `Inserts deterministic mock rows for the last database.SeedDays days.
Nothing is written when the bpd table already holds data.

A running server keeps cached filter options for up to API_CACHE_TTL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			db, err := database.New(&cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					logging.Error().Err(err).Msg("Error closing database")
				}
			}()

			inserted, err := db.SeedMockData(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			out := cmd.OutOrStdout()
			if inserted == 0 {
				fmt.Fprintln(out, "bpd table already has data, nothing inserted")
				return nil
			}
			fmt.Fprintf(out, "inserted %d rows into %s\n", inserted, db.Driver())
			return nil
		},
	}
}
