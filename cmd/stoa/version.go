// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(c *cli) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// version does not touch the vault.
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, c.buildInfo)
				return nil
			}
			for _, f := range c.buildInfo.Fields() {
				fmt.Fprintf(out, "Build %s: %s\n", f.Label, f.Value)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print a single summary line")

	return cmd
}
