// Package report formats day and week rollups for terminal output.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfrost-xyz/timesheet/internal/model"
	"github.com/rfrost-xyz/timesheet/internal/theme"
	"github.com/rfrost-xyz/timesheet/internal/timeutil"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.ColorGray)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.ColorGreen)
	emptyStyle  = lipgloss.NewStyle().Foreground(theme.ColorGray).Italic(true)
)

// Day renders one day's entries followed by the per-stage hour rollup.
func Day(date time.Time, entries []model.LogEntry, rollup []model.DayReportRow) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(date.Format("Monday 2006-01-02")))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(emptyStyle.Render("no entries"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"%-5s  %-5s  %-24s  %-16s  %-14s",
		"Start", "End", "Project", "Stage", "Focus")))
	b.WriteString("\n")
	for _, e := range entries {
		focus := ""
		if e.FocusName != nil {
			focus = *e.FocusName
		}
		b.WriteString(fmt.Sprintf(
			"%-5s  %-5s  %-24s  %-16s  %-14s\n",
			e.Start.Format(timeutil.ClockLayout),
			e.End.Format(timeutil.ClockLayout),
			truncate(e.ProjectName, 24),
			truncate(e.StageName, 16),
			truncate(focus, 14)))
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"%-16s  %-24s  %-16s  %6s",
		"Client", "Project", "Stage", "Hours")))
	b.WriteString("\n")

	var total float64
	for _, r := range rollup {
		client := ""
		if r.ClientName != nil {
			client = *r.ClientName
		}
		b.WriteString(fmt.Sprintf(
			"%-16s  %-24s  %-16s  %6.2f\n",
			truncate(client, 16),
			truncate(r.ProjectName, 24),
			truncate(r.StageName, 16),
			r.Hours))
		total += r.Hours
	}
	b.WriteString(totalStyle.Render(fmt.Sprintf("%60s  %6.2f", "total", total)))
	b.WriteString("\n")

	return b.String()
}

// Week renders the weekly pivot: one line per project/stage pair with hours
// split across the weekdays.
func Week(isoYear, isoWeek int, rows []model.WeekReportRow) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Week %d, %d", isoWeek, isoYear)))
	b.WriteString("\n\n")

	if len(rows) == 0 {
		b.WriteString(emptyStyle.Render("no entries this week"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"%-24s  %-16s  %6s %6s %6s %6s %6s %6s %6s  %7s",
		"Project", "Stage", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun", "Total")))
	b.WriteString("\n")

	var grand float64
	for _, r := range rows {
		b.WriteString(fmt.Sprintf(
			"%-24s  %-16s  %6s %6s %6s %6s %6s %6s %6s  %7.2f\n",
			truncate(r.ProjectName, 24),
			truncate(r.StageName, 16),
			cell(r.Mon), cell(r.Tue), cell(r.Wed), cell(r.Thu),
			cell(r.Fri), cell(r.Sat), cell(r.Sun),
			r.Total))
		grand += r.Total
	}
	b.WriteString(totalStyle.Render(fmt.Sprintf("%93s  %7.2f", "total", grand)))
	b.WriteString("\n")

	return b.String()
}

// cell formats one pivot value, leaving zero hours blank for readability.
func cell(hours float64) string {
	if hours == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", hours)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
