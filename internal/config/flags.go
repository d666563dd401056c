// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"

	"github.com/spf13/pflag"
)

// Flag names registered by [BindFlags].
const (
	FlagConfig     = "config"
	FlagVaultName  = "vault-name"
	FlagKDF        = "kdf"
	FlagIterations = "kdf-iterations"
	FlagDriver     = "storage-driver"
	FlagDSN        = "dsn"
	FlagExportDir  = "export-dir"
	FlagLogPath    = "log-file"
	FlagLogLevel   = "log-level"
)

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-c/--config       JSON or YAML file with configs
//	--vault-name      vault name used in export file names
//	--kdf             key derivation function for new vaults (pbkdf2|argon2id)
//	--kdf-iterations  PBKDF2 iterations for new vaults
//	--storage-driver  sqlite|file|memory
//	-d/--dsn          database or document path
//	--export-dir      directory for export snapshots
//	--log-file        log file of the interactive UI
//	--log-level       debug|info|warn|error
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON or YAML config file path")
	fs.String(FlagVaultName, "", "Vault name used in export file names")
	fs.String(FlagKDF, "", "Key derivation function for new vaults (pbkdf2|argon2id)")
	fs.Int(FlagIterations, 0, "PBKDF2 iterations for new vaults")
	fs.String(FlagDriver, "", "Storage driver (sqlite|file|memory)")
	fs.StringP(FlagDSN, "d", "", "Database or document path")
	fs.String(FlagExportDir, "", "Directory for export snapshots")
	fs.String(FlagLogPath, "", "Log file path")
	fs.String(FlagLogLevel, "", "Log level (debug|info|warn|error)")
}

// parseFlags reads the flags registered by [BindFlags] from an already
// parsed fs. Flags that are not registered on fs are left empty.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if fs == nil {
		return cfg, nil
	}

	var errs error
	str := func(name string) string {
		if fs.Lookup(name) == nil {
			return ""
		}
		v, err := fs.GetString(name)
		errs = errors.Join(errs, err)
		return v
	}

	cfg.ConfigFilePath = str(FlagConfig)
	cfg.Vault.Name = str(FlagVaultName)
	cfg.Vault.KDF = str(FlagKDF)
	cfg.Storage.Driver = str(FlagDriver)
	cfg.Storage.DSN = str(FlagDSN)
	cfg.Storage.ExportDir = str(FlagExportDir)
	cfg.Log.Path = str(FlagLogPath)
	cfg.Log.Level = str(FlagLogLevel)

	if fs.Lookup(FlagIterations) != nil {
		n, err := fs.GetInt(FlagIterations)
		errs = errors.Join(errs, err)
		cfg.Vault.Iterations = n
	}

	if errs != nil {
		return nil, errs
	}
	return cfg, nil
}
