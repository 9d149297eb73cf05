// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcelmaino/bpd-dashboard/internal/auth"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for security.users[].password_hash",
		Long: `Hashes the password given as argument, or the first line of stdin
when no argument is given:

	echo -n 's3cret' | bpdctl hash-password`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password from stdin: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return nil
		},
	}
}
