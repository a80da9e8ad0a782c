package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot the database into the configured backup directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, s, err := setup()
		if err != nil {
			return err
		}
		defer s.Close()

		path, err := s.Backup(context.Background(), cfg.Backup.Dir)
		if err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", path)
		return nil
	},
}
