// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/stoa-vault/internal/client"
	"github.com/MKhiriev/stoa-vault/internal/config"
	"github.com/MKhiriev/stoa-vault/internal/crypto"
	"github.com/MKhiriev/stoa-vault/internal/logger"
	"github.com/MKhiriev/stoa-vault/models"
)

const logRole = "stoa"

// cli holds the state shared by the root command and its subcommands. It is
// filled by setup before any RunE executes.
type cli struct {
	buildInfo  models.AppBuildInfo
	passphrase func(cmd *cobra.Command) ([]byte, error)

	cfg *config.StructuredConfig
	log *logger.Logger
	app *client.App
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	c := &cli{buildInfo: buildInfo, passphrase: readPassphrase}

	cmd := &cobra.Command{
		Use:   "stoa",
		Short: "stoa keeps an encrypted journal on this machine",
		Long: "stoa stores notes in a local vault. Note bodies are encrypted with a key\n" +
			"derived from your passphrase; titles, tags and types stay readable so the\n" +
			"vault can be browsed while it is locked.\n\n" +
			"Run without a subcommand to open the interactive UI.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               cobra.NoArgs,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context())
		},
	}
	config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newVersionCmd(c),
		newExportCmd(c),
		newNotesCmd(c),
	)
	return cmd
}

// setup loads the configuration, creates the logger and opens the vault.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg

	c.log = logger.NewFileLogger(logRole, cfg.Log.Path)
	if err = logger.SetGlobalLevel(cfg.Log.Level); err != nil {
		return err
	}

	ctx := c.log.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	c.app, err = client.NewApp(ctx, cfg, c.buildInfo, c.log)
	if err != nil {
		c.log.Err(err).Str("func", "cli.setup").Msg("failed to open vault")
		return err
	}
	return nil
}

func (c *cli) teardown(_ *cobra.Command, _ []string) error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

// unlock prompts for the passphrase and unlocks the vault.
func (c *cli) unlock(cmd *cobra.Command) error {
	passphrase, err := c.passphrase(cmd)
	if err != nil {
		return err
	}
	defer crypto.SecureWipe(passphrase)

	if len(passphrase) == 0 {
		return crypto.ErrEmptyPassphrase
	}
	return c.app.Services.Vault.Unlock(cmd.Context(), passphrase)
}
