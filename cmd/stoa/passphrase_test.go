package main

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func TestReadPassphrase_FromEnv(t *testing.T) {
	t.Setenv(EnvPassphrase, "amor fati")

	got, err := readPassphrase(&cobra.Command{})
	require.NoError(t, err)
	assert.Equal(t, []byte("amor fati"), got)
}

func TestReadPassphrase_NoTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal")
	}
	t.Setenv(EnvPassphrase, "")

	_, err := readPassphrase(&cobra.Command{})
	assert.ErrorIs(t, err, errNoTerminal)
}
