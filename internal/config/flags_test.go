// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	fs := parsedFlags(t,
		"-c", "stoa.yaml",
		"--vault-name", "journal",
		"--kdf", "argon2id",
		"--kdf-iterations", "300000",
		"--storage-driver", "memory",
		"-d", "vault.db",
		"--export-dir", "out",
		"--log-file", "stoa.log",
		"--log-level", "warn",
	)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{
		Vault:          Vault{Name: "journal", KDF: "argon2id", Iterations: 300000},
		Storage:        Storage{Driver: "memory", DSN: "vault.db", ExportDir: "out"},
		Log:            Log{Path: "stoa.log", Level: "warn"},
		ConfigFilePath: "stoa.yaml",
	}, cfg)
}

func TestParseFlags_Unset(t *testing.T) {
	cfg, err := parseFlags(parsedFlags(t))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_NilFlagSet(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_ForeignFlagSet verifies that a flag set without the config
// flags is tolerated.
func TestParseFlags_ForeignFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("other", pflag.ContinueOnError)
	fs.Bool("verbose", false, "")
	require.NoError(t, fs.Parse([]string{"--verbose"}))

	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_WrongType verifies that a flag registered with another type
// is reported.
func TestParseFlags_WrongType(t *testing.T) {
	fs := pflag.NewFlagSet("other", pflag.ContinueOnError)
	fs.Bool(FlagVaultName, false, "")

	_, err := parseFlags(fs)
	assert.Error(t, err)
}
