package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/rfrost-xyz/timesheet/internal/report"
)

var (
	reportYear int
	reportWeek int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the weekly pivot of hours per project and stage",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := setup()
		if err != nil {
			return err
		}
		defer s.Close()

		year, week := reportYear, reportWeek
		if year == 0 || week == 0 {
			nowYear, nowWeek := time.Now().ISOWeek()
			if year == 0 {
				year = nowYear
			}
			if week == 0 {
				week = nowWeek
			}
		}

		rows, err := s.WeekReport(context.Background(), year, week)
		if err != nil {
			return err
		}
		cmd.Print(report.Week(year, week, rows))
		return nil
	},
}

func init() {
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "ISO year (default: current)")
	reportCmd.Flags().IntVar(&reportWeek, "week", 0, "ISO week 1-53 (default: current)")
}
