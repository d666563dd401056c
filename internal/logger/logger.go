// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger is the zerolog setup shared by the stoa commands.
//
// Commands log JSON to stderr so that stdout stays usable in pipes; the TUI
// logs to a file because the terminal is owned by the UI. Loggers travel in
// the context and are read back with FromContext.
//
// Passphrases, keys and decrypted note content are never logged.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger and adds the context helpers used by the
// vault packages.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a stderr JSON logger tagged with role. Every entry
// carries "role", "time" and a "func" field holding the calling function
// name. The global level starts at debug; see [SetGlobalLevel].
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stderr)
}

// NewFileLogger constructs a *Logger that appends to the file at path. It is
// used by the interactive UI, where writing to the terminal would corrupt the
// screen. If the file cannot be opened the logger falls back to os.Stderr.
func NewFileLogger(role, path string) *Logger {
	var out io.Writer = os.Stderr

	if dir := filepath.Dir(path); dir != "." {
		_ = os.MkdirAll(dir, 0o700)
	}
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err == nil {
		out = logFile
	}

	return newLogger(role, out)
}

func newLogger(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetGlobalLevel parses level ("debug", "info", "warn", ...) and applies it
// to every logger in the process.
func SetGlobalLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l. Fields added to the copy do not leak
// back into l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext returns a copy of ctx carrying the logger, so that code further
// down the call chain can retrieve it with [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or zerolog's default logger
// when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
