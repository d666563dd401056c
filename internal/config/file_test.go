// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	want := &StructuredConfig{
		Vault:   Vault{Name: "journal", KDF: "pbkdf2", Iterations: 120000},
		Storage: Storage{Driver: "sqlite", DSN: "journal.db", ExportDir: "exports"},
		Log:     Log{Path: "journal.log", Level: "debug"},
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "stoa.json",
			content: `{
				"vault": {"name": "journal", "kdf": "pbkdf2", "iterations": 120000},
				"storage": {"driver": "sqlite", "dsn": "journal.db", "export_dir": "exports"},
				"log": {"path": "journal.log", "level": "debug"}
			}`,
		},
		{
			name: "yaml",
			file: "stoa.yaml",
			content: `
vault:
  name: journal
  kdf: pbkdf2
  iterations: 120000
storage:
  driver: sqlite
  dsn: journal.db
  export_dir: exports
log:
  path: journal.log
  level: debug
`,
		},
		{
			name: "yml extension",
			file: "stoa.YML",
			content: `
vault: {name: journal, kdf: pbkdf2, iterations: 120000}
storage: {driver: sqlite, dsn: journal.db, export_dir: exports}
log: {path: journal.log, level: debug}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFile(writeTempConfig(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "broken json", file: "c.json", content: `{"vault":`},
		{name: "unknown json key", file: "c.json", content: `{"server":{}}`},
		{name: "unknown yaml key", file: "c.yaml", content: "server:\n  address: x\n"},
		{name: "wrong type", file: "c.json", content: `{"vault":{"iterations":"many"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFile(writeTempConfig(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := parseFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
