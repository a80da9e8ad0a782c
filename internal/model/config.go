package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// BackupConfig holds database snapshot settings.
type BackupConfig struct {
	// Dir is the directory snapshots are written to.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// IntervalDays is the suggested minimum age of the newest snapshot
	// before `timesheet backup` is worth running again.
	IntervalDays int `mapstructure:"interval_days" yaml:"interval_days"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	// DatabasePath is the location of the SQLite database file.
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`

	// LogFilePath receives diagnostic log output. The interactive UI owns
	// stdout, so logging always goes to a file.
	LogFilePath string `mapstructure:"log_file_path" yaml:"log_file_path"`

	// TimeIncrementMinutes is the snapping granularity for start/end times
	// and the step applied by the time-adjust keys.
	TimeIncrementMinutes int `mapstructure:"time_increment_minutes" yaml:"time_increment_minutes"`

	// DayStart is the default start time (HH:MM) used for the first entry
	// of an empty day.
	DayStart string `mapstructure:"day_start" yaml:"day_start"`

	Backup BackupConfig `mapstructure:"backup" yaml:"backup"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/timesheet/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "timesheet", "config.yaml")
}

// defaultDataDir returns the directory holding the database, log file,
// and backups when the config does not override them.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "timesheet")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	dataDir := defaultDataDir()
	return &AppConfig{
		DatabasePath:         filepath.Join(dataDir, "timesheet.db"),
		LogFilePath:          filepath.Join(dataDir, "timesheet.log"),
		TimeIncrementMinutes: 15,
		DayStart:             "09:00",
		Backup: BackupConfig{
			Dir:          filepath.Join(dataDir, "backups"),
			IntervalDays: 1,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	dataDir := defaultDataDir()
	v.SetDefault("database_path", filepath.Join(dataDir, "timesheet.db"))
	v.SetDefault("log_file_path", filepath.Join(dataDir, "timesheet.log"))
	v.SetDefault("time_increment_minutes", 15)
	v.SetDefault("day_start", "09:00")
	v.SetDefault("backup.dir", filepath.Join(dataDir, "backups"))
	v.SetDefault("backup.interval_days", 1)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.TimeIncrementMinutes <= 0 {
		cfg.TimeIncrementMinutes = 15
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database_path", cfg.DatabasePath)
	v.Set("log_file_path", cfg.LogFilePath)
	v.Set("time_increment_minutes", cfg.TimeIncrementMinutes)
	v.Set("day_start", cfg.DayStart)
	v.Set("backup", cfg.Backup)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
