// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/stoa-vault/internal/vault"
	"github.com/MKhiriev/stoa-vault/models"
)

type vaultDir struct {
	root string
}

func newVaultDir(t *testing.T) vaultDir {
	t.Helper()
	t.Setenv(EnvPassphrase, "correct-horse")
	return vaultDir{root: t.TempDir()}
}

func (v vaultDir) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	base := []string{
		"--storage-driver", "file",
		"--dsn", filepath.Join(v.root, "vault.json"),
		"--log-file", filepath.Join(v.root, "stoa.log"),
		"--export-dir", filepath.Join(v.root, "exports"),
	}

	cmd := newRootCmd(models.NewAppBuildInfo("1.2.3", "2026-10-16", "abc123"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, base...))

	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd(models.NewAppBuildInfo("1.2.3", "", "abc123"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Build version: 1.2.3")
	assert.Contains(t, out.String(), "Build date: N/A")
	assert.Contains(t, out.String(), "Build commit: abc123")
}

func TestVersionCmd_Short(t *testing.T) {
	cmd := newRootCmd(models.NewAppBuildInfo("1.2.3", "2026-10-16", "abc123"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "--short"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1.2.3 (abc123, 2026-10-16)\n", out.String())
}

func TestNotesAddListShow(t *testing.T) {
	v := newVaultDir(t)

	out, err := v.run(t, "Memento mori, memento vivere\n", "notes", "add", "--type", "reflection", "--title", "On death", "--tag", "stoic")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	out, err = v.run(t, "", "notes", "add", "--content", "buy figs", "--title", "Market")
	require.NoError(t, err)

	t.Setenv(EnvPassphrase, "")
	out, err = v.run(t, "", "notes", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "On death")
	assert.Contains(t, out, "Market")
	assert.Contains(t, out, "stoic")
	assert.NotContains(t, out, "Memento")

	out, err = v.run(t, "", "notes", "list", "--type", "thought")
	require.NoError(t, err)
	assert.Contains(t, out, "Market")
	assert.NotContains(t, out, "On death")

	t.Setenv(EnvPassphrase, "correct-horse")
	out, err = v.run(t, "", "notes", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "# On death")
	assert.Contains(t, out, "Memento mori, memento vivere")
}

func TestNotesShow_WrongPassphrase(t *testing.T) {
	v := newVaultDir(t)

	out, err := v.run(t, "secret body", "notes", "add")
	require.NoError(t, err)
	id := strings.TrimSpace(out)

	t.Setenv(EnvPassphrase, "wrong-passphrase")
	_, err = v.run(t, "", "notes", "show", id)
	assert.ErrorIs(t, err, vault.ErrDecryption)
}

func TestNotesAdd_InvalidType(t *testing.T) {
	v := newVaultDir(t)

	_, err := v.run(t, "body", "notes", "add", "--type", "poem")
	assert.Error(t, err)
}

func TestNotesList_UnknownTypeFilter(t *testing.T) {
	v := newVaultDir(t)

	_, err := v.run(t, "", "notes", "list", "--type", "poem")
	assert.ErrorContains(t, err, "unknown note type")
}

func TestExportCmd(t *testing.T) {
	v := newVaultDir(t)

	_, err := v.run(t, "first entry", "notes", "add", "--type", "journal")
	require.NoError(t, err)

	out, err := v.run(t, "", "export", "--vault-name", "meditations")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(v.root, "exports"), filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "meditations-export-"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var snap map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.Contains(t, snap, "notes")
	assert.Contains(t, snap, "salt")
	assert.NotContains(t, string(raw), "first entry")
}

func TestInvalidConfig(t *testing.T) {
	v := newVaultDir(t)

	_, err := v.run(t, "", "notes", "list", "--kdf", "scrypt")
	assert.Error(t, err)
}
