// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/stoa-vault/internal/config"
)

// EnvPassphrase supplies the passphrase to non-interactive runs.
const EnvPassphrase = config.EnvPrefix + "PASSPHRASE"

// errNoTerminal is returned when the passphrase is not set in the
// environment and stdin cannot prompt for it.
var errNoTerminal = errors.New("stdin is not a terminal: set " + EnvPassphrase + " to unlock")

// readPassphrase takes the passphrase from EnvPassphrase or prompts for it
// on the terminal without echo.
func readPassphrase(cmd *cobra.Command) ([]byte, error) {
	if v := os.Getenv(EnvPassphrase); v != "" {
		return []byte(v), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errNoTerminal
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Passphrase: ")
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return passphrase, nil
}
