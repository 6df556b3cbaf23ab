package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestForTUI_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slider.log")
	logger, closer, err := ForTUI(path, "debug")
	require.NoError(t, err)
	logger.Debug("hello", "slide", 2)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "subsystem=tui")
	assert.Contains(t, string(data), "slide=2")
}

func TestForTUI_NoFile(t *testing.T) {
	logger, closer, err := ForTUI("", "info")
	require.NoError(t, err)
	require.NotNil(t, closer)
	logger.Info("dropped")
	assert.NoError(t, closer.Close())
}

func TestForTUI_BadLevel(t *testing.T) {
	_, _, err := ForTUI("", "nope")
	assert.Error(t, err)
}

func TestForCLI_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := ForCLI(&buf, "warn")
	require.NoError(t, err)
	logger.Info("quiet")
	logger.Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
