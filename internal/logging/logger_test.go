// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
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

func TestNew_DisabledByDefault(t *testing.T) {
	t.Setenv(EnvDebugLog, "")

	logger, closeFn := New(Options{})
	defer closeFn()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNew_WritesToExplicitPath(t *testing.T) {
	t.Setenv(EnvDebugLog, "")
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, closeFn := New(Options{Enabled: true, Path: path})
	logger.Debug().Str("component", "test").Msg("hello")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "catalog", entry["app"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNew_EnabledByEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(EnvDebugLog, path)

	logger, closeFn := New(Options{})
	logger.Info().Msg("from env")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "from env")
}

func TestLogPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x.log")
	assert.Equal(t, abs, LogPath(abs))
	assert.Equal(t, filepath.Join("logs", "x.log"), LogPath(filepath.Join("logs", "x.log")))
}

func TestEnvEnabled(t *testing.T) {
	for _, v := range []string{"", "0", "false", "FALSE", "off"} {
		assert.False(t, envEnabled(v), v)
	}
	for _, v := range []string{"1", "true", "/tmp/log"} {
		assert.True(t, envEnabled(v), v)
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf)

	ctx := WithContext(context.Background(), logger)
	FromContext(ctx).Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")

	// no logger stored: must not panic and must not write anywhere
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
		//nolint:staticcheck // nil context is handled explicitly
		FromContext(nil).Info().Msg("dropped")
	})
}
