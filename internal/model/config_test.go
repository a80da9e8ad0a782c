package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfrost-xyz/timesheet/internal/model"
)

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := model.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.TimeIncrementMinutes)
	assert.Equal(t, "09:00", cfg.DayStart)
	assert.NotEmpty(t, cfg.DatabasePath)
	assert.NotEmpty(t, cfg.LogFilePath)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := &model.AppConfig{
		DatabasePath:         filepath.Join(dir, "timesheet.db"),
		LogFilePath:          filepath.Join(dir, "timesheet.log"),
		TimeIncrementMinutes: 30,
		DayStart:             "08:30",
		Backup: model.BackupConfig{
			Dir:          filepath.Join(dir, "backups"),
			IntervalDays: 7,
		},
	}

	require.NoError(t, model.SaveConfig(path, cfg))

	// The parent directory is created on demand, the way a first run
	// materializes the defaults.
	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := model.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.DatabasePath, loaded.DatabasePath)
	assert.Equal(t, 30, loaded.TimeIncrementMinutes)
	assert.Equal(t, "08:30", loaded.DayStart)
	assert.Equal(t, 7, loaded.Backup.IntervalDays)
}
