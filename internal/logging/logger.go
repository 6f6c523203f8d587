// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging provides the zerolog debug logger shared by commands and
// the TUI. Output goes to a log file because stdout belongs to the table or
// the full-screen interface.
package logging

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

// EnvDebugLog enables debug logging. "1"/"true" logs to the default path,
// any value that looks like a path is used as the log file.
const EnvDebugLog = "CATALOG_DEBUG_LOG"

const defaultLogFile = "catalog/debug.log"

// Options controls New
type Options struct {
	// Enabled turns logging on even when EnvDebugLog is unset
	Enabled bool
	// Path overrides the log file location
	Path string
	// Level is the minimum level written; the zero value is debug
	Level zerolog.Level
}

// New returns a file-backed logger and a function that closes the file.
// When logging is disabled it returns a no-op logger.
func New(opts Options) (zerolog.Logger, func()) {
	envValue := os.Getenv(EnvDebugLog)
	if !opts.Enabled && !envEnabled(envValue) {
		return zerolog.Nop(), func() {}
	}

	path := opts.Path
	if path == "" {
		path = LogPath(envValue)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.Nop(), func() {}
	}

	logger := NewWithWriter(f).Level(opts.Level)
	return logger, func() { _ = f.Close() }
}

// NewWithWriter builds the logger used by New on an arbitrary writer
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("app", "catalog").Logger()
}

func envEnabled(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "off":
		return false
	default:
		return true
	}
}

// LogPath resolves where the debug log is written
func LogPath(envValue string) string {
	if envValue != "" && (filepath.IsAbs(envValue) || filepath.Dir(envValue) != ".") {
		return envValue
	}

	path, err := xdg.StateFile(defaultLogFile)
	if err != nil {
		return filepath.Join(os.TempDir(), "catalog_debug.log")
	}
	return path
}

// WithContext stores logger in ctx
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled logger
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return zerolog.Ctx(ctx)
}

// Elapsed adds a duration field in milliseconds
func Elapsed(e *zerolog.Event, start time.Time) *zerolog.Event {
	return e.Dur("elapsed", time.Since(start))
}
