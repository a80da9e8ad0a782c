// Package logtable renders one day's log entries as a selectable table.
package logtable

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfrost-xyz/timesheet/internal/model"
	"github.com/rfrost-xyz/timesheet/internal/theme"
	"github.com/rfrost-xyz/timesheet/internal/timeutil"
)

// ChosenMsg is emitted when the user picks a row with enter. Key holds the
// text of the id cell; the session parses it back to an entry id.
type ChosenMsg struct {
	Key string
}

// Model wraps a bubbles table of log entries.
type Model struct {
	table   table.Model
	entries []model.LogEntry
}

// New creates an empty log table.
func New(width, height int) Model {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Start", Width: 7},
		{Title: "End", Width: 7},
		{Title: "Project", Width: 22},
		{Title: "Stage", Width: 16},
		{Title: "Focus", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{placeholderRow()}),
		table.WithWidth(width),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(theme.ColorBlue)
	styles.Selected = styles.Selected.Foreground(theme.ColorYellow).Bold(true)
	t.SetStyles(styles)

	return Model{table: t}
}

func placeholderRow() table.Row {
	return table.Row{"", "", "", "no entries for this day", "", ""}
}

// SetEntries replaces the table contents. Entries are expected in start
// order; an empty slice shows a placeholder row.
func (m *Model) SetEntries(entries []model.LogEntry) {
	m.entries = entries
	if len(entries) == 0 {
		m.table.SetRows([]table.Row{placeholderRow()})
		m.table.GotoTop()
		return
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		focus := ""
		if e.FocusName != nil {
			focus = *e.FocusName
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", e.ID),
			e.Start.Format(timeutil.ClockLayout),
			e.End.Format(timeutil.ClockLayout),
			e.ProjectName,
			e.StageName,
			focus,
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Entries returns the entries behind the current rows.
func (m Model) Entries() []model.LogEntry { return m.entries }

// Selected returns the entry under the cursor, or nil for an empty day.
func (m Model) Selected() *model.LogEntry {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return nil
	}
	return &m.entries[idx]
}

// Focus enables row navigation.
func (m *Model) Focus() { m.table.Focus() }

// Blur disables row navigation.
func (m *Model) Blur() { m.table.Blur() }

// Focused reports whether the table has keyboard focus.
func (m Model) Focused() bool { return m.table.Focused() }

// SetSize resizes the table.
func (m *Model) SetSize(width, height int) {
	m.table.SetWidth(width)
	m.table.SetHeight(height)
}

// Update forwards navigation keys to the table and turns enter into a
// ChosenMsg for the selected row.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.table.Focused() {
		if keyMsg.String() == "enter" {
			row := m.table.SelectedRow()
			if row == nil || len(m.entries) == 0 {
				return m, nil
			}
			key := row[0]
			return m, func() tea.Msg { return ChosenMsg{Key: key} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table.
func (m Model) View() string {
	return m.table.View()
}
