package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captured returns a logger for role whose output goes to the returned buffer.
func captured(role string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(role)
	l.Logger = l.Output(&buf)
	return l, &buf
}

// entries decodes every JSON line written to buf.
func entries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var e map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		out = append(out, e)
	}
	return out
}

func TestNewLogger_Fields(t *testing.T) {
	l, buf := captured("cli")
	l.Info().Str("note_id", "a1").Msg("note saved")

	got := entries(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "cli", got[0]["role"])
	assert.Equal(t, "a1", got[0]["note_id"])
	assert.Equal(t, "note saved", got[0]["message"])
	assert.Contains(t, got[0], "time")
	assert.NotEmpty(t, got[0]["func"])
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)
	l.Error().Msg("decrypt failed")

	assert.Zero(t, buf.Len())
}

func TestGetChildLogger(t *testing.T) {
	parent, buf := captured("vault")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.With().Str("component", "cache").Logger()

	child.Debug().Msg("from child")
	parent.Debug().Msg("from parent")

	got := entries(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "vault", got[0]["role"])
	assert.Equal(t, "cache", got[0]["component"])
	assert.NotContains(t, got[1], "component")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		l, buf := captured("tui")
		ctx := l.WithContext(context.Background())

		FromContext(ctx).Warn().Msg("vault locked")

		got := entries(t, buf)
		require.Len(t, got, 1)
		assert.Equal(t, "tui", got[0]["role"])
	})

	t.Run("empty context", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "stoa.log")

	l := NewFileLogger("tui", path)
	l.Info().Msg("first")
	NewFileLogger("tui", path).Info().Msg("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := entries(t, bytes.NewBuffer(data))
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0]["message"])
	assert.Equal(t, "second", got[1]["message"])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSetGlobalLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "debug", want: zerolog.DebugLevel},
		{level: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := SetGlobalLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
