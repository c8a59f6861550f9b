package bootstrap

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	err := SetupLogger(LoggerOptions{
		Level:         slog.LevelInfo,
		RunID:         "01TESTRUN",
		ConsoleWriter: &buf,
	})
	require.NoError(t, err)

	slog.Info("configured")

	out := buf.String()
	assert.Contains(t, out, "configured")
	assert.Contains(t, out, "run_id=01TESTRUN")
}

func TestSetupLoggerWritesRunFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	err := SetupLogger(LoggerOptions{
		Level:         slog.LevelInfo,
		LogDir:        dir,
		RunID:         "01TESTRUN",
		ConsoleWriter: &buf,
	})
	require.NoError(t, err)

	slog.Info("to file")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "01TESTRUN")

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"to file"`)
	assert.Contains(t, string(data), `"run_id":"01TESTRUN"`)
}

func TestSetupLoggerBadLogDir(t *testing.T) {
	err := SetupLogger(LoggerOptions{
		Level:  slog.LevelInfo,
		LogDir: "/nonexistent/log/dir",
		RunID:  "01TESTRUN",
	})
	assert.Error(t, err)
}

func TestShouldColorize(t *testing.T) {
	assert.True(t, ShouldColorize("always", false, false))
	assert.False(t, ShouldColorize("never", false, false))
	assert.False(t, ShouldColorize("never", true, false))

	// Auto follows the forced terminal hints.
	assert.True(t, ShouldColorize("auto", true, false))
	assert.False(t, ShouldColorize("auto", false, true))
}
