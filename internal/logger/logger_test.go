package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"DEBUG":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"Warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"loud":    LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, LevelDebug))
	log.Info("export done", "format", "yaml", "families", 22)

	line := buf.String()
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z \[INFO\] export done \| format=yaml, families=22\n$`, line)
}

func TestHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, LevelWarn))
	log.Info("hidden")
	log.Debug("hidden")
	log.Warn("shown")
	log.Log(context.Background(), LevelTrace, "hidden")

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "[WARN] shown")
}

func TestHandlerAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, LevelTrace)).With("family", "blue").WithGroup("swatch")
	log.Log(context.Background(), LevelTrace, "hover", "shade", 500)

	assert.Contains(t, buf.String(), "[TRACE] hover | swatch.family=blue, swatch.shade=500")
}

func TestNewStderr(t *testing.T) {
	log, c := New(Options{Level: "debug"})
	require.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), LevelDebug))
	assert.NoError(t, c.Close())
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatches.log")
	log, c := New(Options{Path: path, Level: "info"})
	log.Info("started", "window", true)
	require.NoError(t, c.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] started | window=true")
}
