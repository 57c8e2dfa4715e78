package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fitcoach.log")
	logger, err := New(path, "info", false)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "visible")
	require.NotContains(t, string(data), "hidden")
}

func TestVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitcoach.log")
	logger, err := New(path, "warn", true)
	require.NoError(t, err)
	logger.Debug("router detail")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "router detail"))
}

func TestEmptyPathIsNop(t *testing.T) {
	logger, err := New("", "debug", true)
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("goes nowhere")
}
