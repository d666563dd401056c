// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"

	"github.com/MKhiriev/stoa-vault/internal/crypto"
)

// EnvPrefix is prepended to every environment variable the application
// reads, e.g. STOA_STORAGE_DSN.
const EnvPrefix = "STOA_"

// DotEnvFile is the dotenv file loaded from the working directory when it
// exists.
const DotEnvFile = ".env"

// StructuredConfig is the top-level configuration container for the
// stoa-vault application. It aggregates all sub-configurations and is
// populated by merging values from defaults, a config file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json/yaml: keys used in the config file.
type StructuredConfig struct {
	// Vault holds key derivation settings and the vault name.
	Vault Vault `envPrefix:"VAULT_" json:"vault" yaml:"vault"`

	// Storage selects and locates the persistence backend.
	Storage Storage `envPrefix:"STORAGE_" json:"storage" yaml:"storage"`

	// Log controls where log lines go and how verbose they are.
	Log Log `envPrefix:"LOG_" json:"log" yaml:"log"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via STOA_CONFIG or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG" json:"-" yaml:"-"`
}

// Vault holds settings of the vault itself.
type Vault struct {
	// Name identifies the vault in export file names.
	// Env: STOA_VAULT_NAME
	Name string `env:"NAME" json:"name" yaml:"name"`

	// KDF is the key derivation function used when a new vault is created:
	// "pbkdf2" or "argon2id". Existing vaults always unlock with the
	// function recorded next to their salt.
	// Env: STOA_VAULT_KDF
	KDF string `env:"KDF" json:"kdf" yaml:"kdf"`

	// Iterations is the PBKDF2 iteration count for new vaults.
	// Env: STOA_VAULT_ITERATIONS
	Iterations int `env:"ITERATIONS" json:"iterations" yaml:"iterations"`
}

// Storage holds persistence settings.
type Storage struct {
	// Driver is "sqlite", "file" or "memory".
	// Env: STOA_STORAGE_DRIVER
	Driver string `env:"DRIVER" json:"driver" yaml:"driver"`

	// DSN is the sqlite database path or the JSON document path of the file
	// driver. Ignored by the memory driver.
	// Env: STOA_STORAGE_DSN
	DSN string `env:"DSN" json:"dsn" yaml:"dsn"`

	// ExportDir is where export snapshots are written.
	// Env: STOA_STORAGE_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR" json:"export_dir" yaml:"export_dir"`
}

// Log holds logging settings.
type Log struct {
	// Path is the log file used by the interactive UI.
	// Env: STOA_LOG_PATH
	Path string `env:"PATH" json:"path" yaml:"path"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: STOA_LOG_LEVEL
	Level string `env:"LEVEL" json:"level" yaml:"level"`
}

// KDF names accepted in [Vault.KDF].
const (
	KDFPBKDF2   = "pbkdf2"
	KDFArgon2id = "argon2id"
)

// KDFParams maps the vault settings to the parameters used for new vaults.
func (v Vault) KDFParams() crypto.KDFParams {
	if v.KDF == KDFArgon2id {
		return crypto.DefaultArgon2idParams()
	}

	params := crypto.DefaultPBKDF2Params()
	if v.Iterations > 0 {
		params.Iterations = v.Iterations
	}
	return params
}

// Defaults returns the configuration used for every field no source sets.
func Defaults() StructuredConfig {
	return StructuredConfig{
		Vault: Vault{
			Name:       "stoa",
			KDF:        KDFPBKDF2,
			Iterations: crypto.DefaultIterations,
		},
		Storage: Storage{
			Driver:    "sqlite",
			DSN:       "stoa.db",
			ExportDir: ".",
		},
		Log: Log{
			Path:  "stoa.log",
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. fs holds the command-line flags
// registered with [BindFlags]; it may be nil.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DotEnvFile).
		withEnv().
		withFlags(fs).
		withFile().
		build()
}
