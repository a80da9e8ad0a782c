// Package cmd wires the command line surface: the interactive session,
// non-interactive reports, and database snapshots.
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rfrost-xyz/timesheet/internal/app"
	"github.com/rfrost-xyz/timesheet/internal/model"
	"github.com/rfrost-xyz/timesheet/internal/report"
	"github.com/rfrost-xyz/timesheet/internal/store"
	"github.com/rfrost-xyz/timesheet/internal/timeutil"
)

var (
	configPath string
	dateFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "Track work time against clients, projects and stages",
	Long: "timesheet opens an interactive editor for the current day's log.\n" +
		"Pass --date to print that day's entries and rollup instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, s, err := setup()
		if err != nil {
			return err
		}
		defer s.Close()

		if dateFlag != "" {
			date, err := time.ParseInLocation(timeutil.DateLayout, dateFlag, time.Local)
			if err != nil {
				return fmt.Errorf("parsing --date %q: expected YYYY-MM-DD", dateFlag)
			}
			return printDay(cmd, s, date)
		}

		program := tea.NewProgram(
			app.New(s, cfg, time.Now()),
			tea.WithAltScreen(),
		)
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("running interactive session: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ~/.config/timesheet/config.yaml)")
	rootCmd.Flags().StringVar(&dateFlag, "date", "",
		"print the day report for YYYY-MM-DD instead of opening the editor")

	rootCmd.AddCommand(reportCmd, backupCmd)
}

// setup loads configuration, points the logger at the configured file, and
// opens the database.
func setup() (*model.AppConfig, *store.SQLiteStore, error) {
	path := configPath
	if path == "" {
		path = model.DefaultConfigPath()
	}
	cfg, err := model.LoadConfig(path)
	if err != nil {
		return nil, nil, err
	}

	// Materialize the defaults on first run so the user has a file to edit.
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		if err := model.SaveConfig(path, cfg); err != nil {
			log.Printf("writing default config to %s: %v", path, err)
		}
	}

	// The interactive UI owns stdout, so diagnostics go to a file.
	if cfg.LogFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFilePath), 0o755); err == nil {
			if f, err := os.OpenFile(cfg.LogFilePath,
				os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
				log.SetOutput(f)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating data directory: %w", err)
	}
	s, err := store.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

func printDay(cmd *cobra.Command, s *store.SQLiteStore, date time.Time) error {
	ctx := context.Background()
	entries, err := s.ListEntriesForDay(ctx, date)
	if err != nil {
		return err
	}
	rollup, err := s.DayReport(ctx, date)
	if err != nil {
		return err
	}
	cmd.Print(report.Day(date, entries, rollup))
	return nil
}
