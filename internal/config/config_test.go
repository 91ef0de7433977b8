package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatdb/internal/storage/filestore"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, filestore.FormatCSV, cfg.StorageFormat())
	assert.Equal(t, filepath.Join("./data", "history.txt"), cfg.HistoryFile)
	assert.Equal(t, "WARN", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FLATDB_DATA_DIR", "/tmp/flat")
	t.Setenv("FLATDB_FORMAT", "json")
	t.Setenv("FLATDB_LOG_LEVEL", "DEBUG")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/flat", cfg.DataDir)
	assert.Equal(t, filestore.FormatJSON, cfg.StorageFormat())
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.Equal(t, filepath.Join("/tmp/flat", "history.txt"), cfg.HistoryFile)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flatdb.yaml")
	content := "data_dir: /srv/tables\nformat: json\nhistory_file: /srv/hist\nlog:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/tables", cfg.DataDir)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "/srv/hist", cfg.HistoryFile)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_RejectsUnknownFormat(t *testing.T) {
	v := New()
	v.Set("format", "xml")

	_, err := Load(v, "")
	assert.Error(t, err)
}
