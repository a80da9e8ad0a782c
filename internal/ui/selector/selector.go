// Package selector provides a filterable selection input: a text field whose
// typed value filters a dropdown of (label, id) options.
package selector

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfrost-xyz/timesheet/internal/theme"
)

// Option is a single selectable candidate.
type Option struct {
	Label string
	ID    *int64
}

// ChosenMsg is emitted when the user confirms an option with enter.
type ChosenMsg struct {
	Control string
	ID      *int64
	Label   string
}

// Model is the filterable selector component.
type Model struct {
	control string
	input   textinput.Model

	options  []Option
	filtered []Option

	highlight     int
	showList      bool
	selectedID    *int64

	maxVisible int
}

// New creates a selector identified by control, which is carried on every
// ChosenMsg so a central handler can tell the selectors apart.
func New(control, placeholder string) Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "> "

	return Model{
		control:    control,
		input:      in,
		maxVisible: 6,
	}
}

// Control returns the selector's identity string.
func (m Model) Control() string { return m.control }

// SelectedID returns the currently selected option id, or nil.
func (m Model) SelectedID() *int64 { return m.selectedID }

// Value returns the visible text.
func (m Model) Value() string { return m.input.Value() }

// ListVisible reports whether the dropdown is currently shown. The session
// uses this to decide whether tab/esc belong to the selector or to the form.
func (m Model) ListVisible() bool { return m.showList }

// Options returns the full candidate set.
func (m Model) Options() []Option { return m.options }

// Focus gives the text field keyboard focus and re-applies the filter so the
// list visibility reflects the current text.
func (m *Model) Focus() tea.Cmd {
	cmd := m.input.Focus()
	m.applyFilter()
	return cmd
}

// Blur removes keyboard focus and hides the list.
func (m *Model) Blur() {
	m.input.Blur()
	m.showList = false
}

// Focused reports whether the text field has keyboard focus.
func (m Model) Focused() bool { return m.input.Focused() }

// SetWidth sets the width of the text field.
func (m *Model) SetWidth(w int) { m.input.Width = w }

// SetOptions replaces the candidate set and re-applies the current filter.
func (m *Model) SetOptions(options []Option) {
	m.options = options
	m.applyFilter()
}

// SetValueByID programmatically selects the option matching id and reflects
// its label in the text field. A nil id clears the selection. A non-nil id
// absent from the current options leaves the selection unchanged, since the
// options may still be loading, and reports false so the caller can retry.
func (m *Model) SetValueByID(id *int64) bool {
	if id == nil {
		m.Clear()
		return true
	}
	for _, opt := range m.options {
		if opt.ID != nil && *opt.ID == *id {
			m.selectedID = opt.ID
			m.input.SetValue(opt.Label)
			m.input.CursorEnd()
			m.showList = false
			return true
		}
	}
	log.Printf("selector %s: id %d not in current options (still loading?)", m.control, *id)
	return false
}

// Clear empties the filter text and the selection.
func (m *Model) Clear() {
	m.input.SetValue("")
	m.selectedID = nil
	m.filtered = nil
	m.showList = false
	m.highlight = 0
}

// applyFilter recomputes the filtered view from the current text. The list
// is shown while focused and at least one candidate is visible: everything
// on an empty filter, the matches otherwise. Dismissal and confirmation hide
// it until the next edit or arrow key.
func (m *Model) applyFilter() {
	filter := strings.ToLower(m.input.Value())
	if filter == "" {
		m.filtered = append([]Option(nil), m.options...)
	} else {
		m.filtered = nil
		for _, opt := range m.options {
			if strings.Contains(strings.ToLower(opt.Label), filter) {
				m.filtered = append(m.filtered, opt)
			}
		}
	}
	if m.highlight >= len(m.filtered) {
		m.highlight = 0
	}
	m.showList = m.input.Focused() && len(m.filtered) > 0
}

// reconcile aligns the selection id with the visible text: text exactly
// equal to an option label selects it, text matching no label clears the id.
// This covers a user retyping a previously confirmed value.
func (m *Model) reconcile() {
	text := m.input.Value()
	for _, opt := range m.options {
		if opt.Label == text {
			m.selectedID = opt.ID
			return
		}
	}
	m.selectedID = nil
}

// Update handles key input while the selector is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "down", "up":
		if !m.showList {
			if m.input.Value() == "" {
				m.filtered = append([]Option(nil), m.options...)
			}
			if len(m.filtered) == 0 {
				return m, nil
			}
			m.showList = true
			if keyMsg.String() == "down" {
				m.highlight = 0
			} else {
				m.highlight = len(m.filtered) - 1
			}
			return m, nil
		}
		if len(m.filtered) > 0 {
			if keyMsg.String() == "down" {
				m.highlight = (m.highlight + 1) % len(m.filtered)
			} else {
				m.highlight = (m.highlight - 1 + len(m.filtered)) % len(m.filtered)
			}
		}
		return m, nil

	case "enter":
		if m.showList && m.highlight < len(m.filtered) {
			opt := m.filtered[m.highlight]
			m.selectedID = opt.ID
			m.input.SetValue(opt.Label)
			m.input.CursorEnd()
			m.showList = false
			control := m.control
			return m, func() tea.Msg {
				return ChosenMsg{Control: control, ID: opt.ID, Label: opt.Label}
			}
		}
		return m, nil

	case "tab":
		// Provisional accept: copy the highlighted label into the text
		// without emitting ChosenMsg. Reconciliation still aligns the id.
		if m.showList && m.highlight < len(m.filtered) {
			m.input.SetValue(m.filtered[m.highlight].Label)
			m.input.CursorEnd()
			m.showList = false
			m.reconcile()
		}
		return m, nil

	case "esc":
		if m.showList {
			m.showList = false
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyFilter()
		m.reconcile()
	}
	return m, cmd
}

// View renders the text field and, when visible, a windowed option list.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())

	if !m.showList || len(m.filtered) == 0 {
		return b.String()
	}

	// Keep the highlight inside the visible window.
	start := 0
	if m.highlight >= m.maxVisible {
		start = m.highlight - m.maxVisible + 1
	}
	end := start + m.maxVisible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := start; i < end; i++ {
		b.WriteString("\n")
		if i == m.highlight {
			b.WriteString(theme.HighlightedOptionStyle.Render("▸ " + m.filtered[i].Label))
		} else {
			b.WriteString(theme.OptionStyle.Render(m.filtered[i].Label))
		}
	}
	return b.String()
}
