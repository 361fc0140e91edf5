package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wynnrig/weightcore/logging"
)

// TestNew_NoSinksIsNop: neither console nor file configured.
func TestNew_NoSinksIsNop(t *testing.T) {
	log := logging.New("info", logging.FileConfig{}, false)
	require.NotNil(t, log)
	log.Info("discarded") // must not panic
	require.NoError(t, log.Sync())
}

// TestNew_FileSinkWrites routes records into the rotated file.
func TestNew_FileSinkWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	log := logging.New("debug", logging.DefaultFileConfig(path), false)

	log.Debug("stroke applied")
	log.Info("weights normalized")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "stroke applied")
	require.Contains(t, string(data), "weights normalized")
}

// TestNew_LevelFiltersRecords: debug is dropped at info level.
func TestNew_LevelFiltersRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	log := logging.New("info", logging.DefaultFileConfig(path), false)

	log.Debug("hidden")
	log.Warn("visible")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "visible")
}

// TestDefaultFileConfig keeps rotation bounded.
func TestDefaultFileConfig(t *testing.T) {
	fc := logging.DefaultFileConfig("x.log")
	require.Equal(t, "x.log", fc.Path)
	require.Positive(t, fc.MaxSizeMB)
	require.Positive(t, fc.MaxBackups)
	require.Positive(t, fc.MaxAgeDays)
}
