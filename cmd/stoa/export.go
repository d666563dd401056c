// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newExportCmd(c *cli) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of the vault to a JSON file",
		Long: "Write the stored notes, settings and salt to <vault-name>-export-<date>.json.\n" +
			"Note bodies stay encrypted, so the vault does not need to be unlocked.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = c.cfg.Storage.ExportDir
			}

			path, err := c.app.Services.Export.WriteFile(cmd.Context(), dir, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory for the snapshot (default: configured export dir)")
	return cmd
}
