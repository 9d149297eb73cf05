// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

// Command bpdctl administers a BPD dashboard deployment.
//
//	bpdctl config check
//	bpdctl hash-password 's3cret'
//	bpdctl seed
//
// bpdctl reads the same config.yaml, .env and environment variables as
// the server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marcelmaino/bpd-dashboard/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1) //nolint:gocritic // stop already called
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "bpdctl",
		Short:         "BPD dashboard administration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Init(logging.Config{
				Level:  logLevel,
				Format: "console",
				Output: cmd.ErrOrStderr(),
			})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "trace, debug, info, warn or error")

	root.AddCommand(newSeedCmd(), newHashPasswordCmd(), newConfigCmd())
	return root
}
