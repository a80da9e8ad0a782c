// Package app contains the root Bubble Tea model for the interactive
// timesheet: a form for one log entry alongside the day's entry table.
package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rfrost-xyz/timesheet/internal/keys"
	"github.com/rfrost-xyz/timesheet/internal/model"
	"github.com/rfrost-xyz/timesheet/internal/store"
	"github.com/rfrost-xyz/timesheet/internal/theme"
	"github.com/rfrost-xyz/timesheet/internal/timeutil"
	"github.com/rfrost-xyz/timesheet/internal/ui"
	"github.com/rfrost-xyz/timesheet/internal/ui/logtable"
	"github.com/rfrost-xyz/timesheet/internal/ui/selector"
)

// focusZone identifies which control owns keyboard input.
type focusZone int

const (
	zoneProject focusZone = iota
	zoneStage
	zoneFocus
	zoneStart
	zoneEnd
	zoneTable
)

// formZones is the tab cycle through the entry form.
var formZones = []focusZone{zoneProject, zoneStage, zoneFocus, zoneStart, zoneEnd}

const (
	controlProject = "project"
	controlStage   = "stage"
	controlFocus   = "focus"
)

// noFocusLabel is the synthetic first option of the focus selector.
const noFocusLabel = "(none)"

// Model is the root application model. One instance holds the whole editing
// session: the viewed date, the form state, and the day's entry table.
type Model struct {
	store store.Store
	cfg   *model.AppConfig
	keys  *keys.KeyMap

	layout ui.Layout
	ready  bool

	date time.Time

	project selector.Model
	stage   selector.Model
	focus   selector.Model
	start   textinput.Model
	end     textinput.Model

	// Last known good time values, the fallback when the visible text
	// does not parse.
	currentStart time.Time
	currentEnd   time.Time

	overview logtable.Model

	zone focusZone

	// editingID is the id of the entry open in the form, 0 when the form
	// holds a new entry.
	editingID int64

	// rowChosen records whether a table row was confirmed this session.
	// It gates deletion so ctrl+d cannot act on a stale highlight.
	rowChosen bool

	// Pending selector values re-applied once options finish loading.
	pendingStageID *int64
	pendingFocusID *int64
	pendingActive  bool

	confirm   *huh.Form
	confirmID int64

	notice         string
	noticeSeverity string
}

// New creates the root model for the given day.
func New(s store.Store, cfg *model.AppConfig, date time.Time) Model {
	start := textinput.New()
	start.Placeholder = "HH:MM"
	start.Prompt = "> "
	start.CharLimit = 5
	start.Width = 6

	end := textinput.New()
	end.Placeholder = "HH:MM"
	end.Prompt = "> "
	end.CharLimit = 5
	end.Width = 6

	m := Model{
		store:    s,
		cfg:      cfg,
		keys:     keys.DefaultKeyMap(),
		layout:   ui.NewLayout(100, 30),
		date:     date,
		project:  selector.New(controlProject, "project"),
		stage:    selector.New(controlStage, "stage"),
		focus:    selector.New(controlFocus, "focus (optional)"),
		start:    start,
		end:      end,
		overview: logtable.New(56, 20),
		zone:     zoneProject,
	}
	m.applyZone()
	return m
}

// Init loads the catalog and the viewed day. The stage list stays empty
// until a project is chosen.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadProjects(m.store),
		loadFocuses(m.store),
		loadEntries(m.store, m.date),
	)
}

// Date returns the day the session is viewing.
func (m Model) Date() time.Time { return m.date }

// Editing reports whether an existing entry is open in the form.
func (m Model) Editing() bool { return m.editingID != 0 }

// applyZone focuses the control for the current zone and blurs the rest.
func (m *Model) applyZone() {
	m.project.Blur()
	m.stage.Blur()
	m.focus.Blur()
	m.start.Blur()
	m.end.Blur()
	m.overview.Blur()

	switch m.zone {
	case zoneProject:
		m.project.Focus()
	case zoneStage:
		m.stage.Focus()
	case zoneFocus:
		m.focus.Focus()
	case zoneStart:
		m.start.Focus()
	case zoneEnd:
		m.end.Focus()
	case zoneTable:
		m.overview.Focus()
	}
}

// moveZone advances the form focus by delta positions, wrapping around. The
// table is entered only through its dedicated key.
func (m *Model) moveZone(delta int) {
	if m.zone == zoneTable {
		m.zone = zoneProject
		m.applyZone()
		return
	}
	idx := 0
	for i, z := range formZones {
		if z == m.zone {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(formZones)) % len(formZones)
	m.zone = formZones[idx]
	m.applyZone()
}

func (m *Model) setNotice(severity, text string) {
	m.noticeSeverity = severity
	m.notice = text
}

func (m *Model) clearNotice() {
	m.notice = ""
	m.noticeSeverity = ""
}

// increment returns the configured snapping step.
func (m Model) increment() time.Duration {
	step := m.cfg.TimeIncrementMinutes
	if step <= 0 {
		step = 15
	}
	return time.Duration(step) * time.Minute
}

// resetForm returns the form to new-entry state: every selection drops and
// the stage list empties until the next project choice. Times fall back to
// the configured day start; the caller pairs the reset with loadLatest so
// the stored latest entry can refine them once it arrives.
func (m *Model) resetForm() {
	m.editingID = 0
	m.pendingActive = false
	m.pendingStageID = nil
	m.pendingFocusID = nil
	m.project.Clear()
	m.stage.Clear()
	m.stage.SetOptions(nil)
	m.focus.Clear()

	m.setDefaultTimes(m.dayStart())
}

// setDefaultTimes writes start and start+increment into the time fields,
// clamping the end to the same date.
func (m *Model) setDefaultTimes(start time.Time) {
	end := start.Add(m.increment())
	if !timeutil.SameDate(start, end) {
		end = start
	}
	m.currentStart = start
	m.currentEnd = end
	m.start.SetValue(timeutil.FormatClock(start))
	m.end.SetValue(timeutil.FormatClock(end))
}

// dayStart is the configured working-day start snapped to the increment, on
// the viewed date.
func (m Model) dayStart() time.Time {
	clock, ok := timeutil.ParseClock(m.cfg.DayStart)
	if !ok {
		clock, _ = timeutil.ParseClock("09:00")
	}
	step := int(m.increment() / time.Minute)
	return timeutil.CombineDateClock(m.date, timeutil.SnapToInterval(clock, step))
}

// setDate switches the viewed day, abandoning any open edit.
func (m *Model) setDate(date time.Time) tea.Cmd {
	m.date = date
	m.editingID = 0
	m.rowChosen = false
	m.pendingActive = false
	m.clearNotice()
	return loadEntries(m.store, m.date)
}

// Update is the single dispatch point for every message in the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		tableWidth := msg.Width/2 - 4
		if tableWidth < 40 {
			tableWidth = 40
		}
		m.overview.SetSize(tableWidth, m.layout.ContentHeight()-4)

		selWidth := msg.Width - tableWidth - 12
		if selWidth < 20 {
			selWidth = 20
		}
		m.project.SetWidth(selWidth)
		m.stage.SetWidth(selWidth)
		m.focus.SetWidth(selWidth)
		return m, nil

	case projectsLoadedMsg:
		if msg.err != nil {
			m.setNotice("error", fmt.Sprintf("loading projects: %v", msg.err))
			return m, nil
		}
		options := make([]selector.Option, 0, len(msg.projects))
		for _, p := range msg.projects {
			p := p
			options = append(options, selector.Option{Label: p.Name, ID: &p.ID})
		}
		m.project.SetOptions(options)
		return m, nil

	case stagesLoadedMsg:
		if msg.err != nil {
			m.setNotice("error", fmt.Sprintf("loading stages: %v", msg.err))
			return m, nil
		}
		options := make([]selector.Option, 0, len(msg.stages))
		for _, s := range msg.stages {
			s := s
			options = append(options, selector.Option{Label: s.Name, ID: &s.ID})
		}
		m.stage.SetOptions(options)
		if m.pendingActive {
			return m, m.applyPending(1)
		}
		return m, nil

	case focusesLoadedMsg:
		if msg.err != nil {
			m.setNotice("error", fmt.Sprintf("loading focuses: %v", msg.err))
			return m, nil
		}
		// A leading no-focus option lets the optional tag be dropped
		// without erasing the text by hand.
		options := make([]selector.Option, 0, len(msg.focuses)+1)
		options = append(options, selector.Option{Label: noFocusLabel})
		for _, f := range msg.focuses {
			f := f
			options = append(options, selector.Option{Label: f.Name, ID: &f.ID})
		}
		m.focus.SetOptions(options)
		return m, nil

	case entriesLoadedMsg:
		if msg.err != nil {
			m.setNotice("error", fmt.Sprintf("loading entries: %v", msg.err))
			return m, nil
		}
		if !timeutil.SameDate(msg.date, m.date) {
			// Stale response from a day the user already left.
			return m, nil
		}
		m.overview.SetEntries(msg.entries)
		if m.editingID == 0 {
			m.resetForm()
			return m, loadLatest(m.store)
		}
		return m, nil

	case latestLoadedMsg:
		if msg.err != nil {
			m.setNotice("error", fmt.Sprintf("loading latest entry: %v", msg.err))
			return m, nil
		}
		// The stored latest end only moves the defaults when it falls on
		// the viewed date; otherwise the day-start fallback stands.
		if m.editingID == 0 && msg.latest != nil && timeutil.SameDate(msg.latest.End, m.date) {
			m.setDefaultTimes(msg.latest.End)
		}
		return m, nil

	case saveResultMsg:
		if msg.err != nil {
			m.setNotice("error", fmt.Sprintf("saving entry: %v", msg.err))
			return m, nil
		}
		if msg.created {
			m.setNotice("info", fmt.Sprintf("entry %d created", msg.id))
		} else {
			m.setNotice("info", fmt.Sprintf("entry %d updated", msg.id))
		}
		// The reload resets the form to new-entry defaults.
		m.editingID = 0
		m.zone = zoneProject
		m.applyZone()
		return m, loadEntries(m.store, m.date)

	case deleteResultMsg:
		if msg.err != nil {
			m.setNotice("error", fmt.Sprintf("deleting entry: %v", msg.err))
			return m, nil
		}
		m.setNotice("info", fmt.Sprintf("entry %d deleted", msg.id))
		m.rowChosen = false
		// An open edit ends only when its own entry was deleted.
		if m.editingID != 0 && msg.id == m.editingID {
			m.editingID = 0
			m.zone = zoneProject
			m.applyZone()
		}
		return m, loadEntries(m.store, m.date)

	case applyPendingMsg:
		return m, m.applyPending(msg.attempt)

	case selector.ChosenMsg:
		return m.handleChosen(msg)

	case logtable.ChosenMsg:
		return m.handleRowChosen(msg)
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	return m.routeToZone(msg)
}

// handleKey applies global bindings first, then routes to the focused
// control. Tab and esc defer to an open selector dropdown.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Save):
		return m.saveCurrent()

	case key.Matches(msg, k.Delete):
		return m.requestDelete()

	case key.Matches(msg, k.PrevDay):
		return m, m.setDate(m.date.AddDate(0, 0, -1))

	case key.Matches(msg, k.NextDay):
		return m, m.setDate(m.date.AddDate(0, 0, 1))

	case key.Matches(msg, k.Today):
		return m, m.setDate(time.Now())

	case key.Matches(msg, k.FocusOverview):
		if m.zone == zoneTable {
			m.zone = zoneProject
		} else {
			m.zone = zoneTable
		}
		m.applyZone()
		return m, nil

	case key.Matches(msg, k.NextField):
		if m.focusedSelector() != nil && m.focusedSelector().ListVisible() {
			return m.routeToZone(msg)
		}
		m.moveZone(1)
		return m, nil

	case key.Matches(msg, k.PrevField):
		m.moveZone(-1)
		return m, nil

	case key.Matches(msg, k.Cancel):
		if sel := m.focusedSelector(); sel != nil && sel.ListVisible() {
			return m.routeToZone(msg)
		}
		if m.zone == zoneTable {
			m.zone = zoneProject
			m.applyZone()
			return m, nil
		}
		if m.editingID != 0 {
			m.resetForm()
			m.zone = zoneProject
			m.applyZone()
			m.setNotice("info", "edit discarded")
			return m, loadLatest(m.store)
		}
		m.clearNotice()
		return m, nil

	case key.Matches(msg, k.TimeUp), key.Matches(msg, k.TimeDown):
		if m.zone == zoneStart || m.zone == zoneEnd {
			m.adjustTime(key.Matches(msg, k.TimeUp))
			return m, nil
		}
	}

	return m.routeToZone(msg)
}

// focusedSelector returns the selector owning keyboard focus, or nil.
func (m *Model) focusedSelector() *selector.Model {
	switch m.zone {
	case zoneProject:
		return &m.project
	case zoneStage:
		return &m.stage
	case zoneFocus:
		return &m.focus
	}
	return nil
}

// routeToZone forwards a message to the currently focused control.
func (m Model) routeToZone(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.zone {
	case zoneProject:
		m.project, cmd = m.project.Update(msg)
	case zoneStage:
		m.stage, cmd = m.stage.Update(msg)
	case zoneFocus:
		m.focus, cmd = m.focus.Update(msg)
	case zoneStart:
		m.start, cmd = m.start.Update(msg)
	case zoneEnd:
		m.end, cmd = m.end.Update(msg)
	case zoneTable:
		m.overview, cmd = m.overview.Update(msg)
	}
	return m, cmd
}

// handleChosen reacts to a confirmed selector option. A project choice
// cascades: the stage list is rescoped, and the dependent selections drop.
// While an entry is open for editing its stored stage and focus ids are
// re-applied instead, once the scoped list arrives.
func (m Model) handleChosen(msg selector.ChosenMsg) (tea.Model, tea.Cmd) {
	if msg.Control != controlProject {
		return m, nil
	}
	if m.editingID != 0 {
		m.pendingActive = true
	} else if !m.pendingActive {
		m.stage.Clear()
		m.focus.Clear()
	}
	return m, loadStages(m.store, msg.ID)
}

// handleRowChosen opens the selected table row in the form.
func (m Model) handleRowChosen(msg logtable.ChosenMsg) (tea.Model, tea.Cmd) {
	id, err := strconv.ParseInt(msg.Key, 10, 64)
	if err != nil {
		m.setNotice("error", fmt.Sprintf("unreadable row key %q", msg.Key))
		return m, nil
	}

	var entry *model.LogEntry
	for _, e := range m.overview.Entries() {
		if e.ID == id {
			e := e
			entry = &e
			break
		}
	}
	if entry == nil {
		m.setNotice("error", fmt.Sprintf("entry %d not in the loaded day", id))
		return m, nil
	}

	m.rowChosen = true
	m.editingID = entry.ID
	m.clearNotice()

	projectID := entry.ProjectID
	m.project.SetValueByID(&projectID)
	stageID := entry.StageID
	m.pendingStageID = &stageID
	m.pendingFocusID = entry.FocusID
	m.pendingActive = true

	m.currentStart = entry.Start
	m.currentEnd = entry.End
	m.start.SetValue(timeutil.FormatClock(entry.Start))
	m.end.SetValue(timeutil.FormatClock(entry.End))

	m.zone = zoneProject
	m.applyZone()

	return m, tea.Batch(loadStages(m.store, &projectID), retryApplyPending(1))
}

// applyPending re-applies the stage and focus of the entry being edited.
// Selector options may lag behind the row choice, so failed applications
// retry on a short tick up to a fixed cap.
func (m *Model) applyPending(attempt int) tea.Cmd {
	if !m.pendingActive {
		return nil
	}

	ok := m.stage.SetValueByID(m.pendingStageID)
	if ok && m.pendingFocusID != nil {
		ok = m.focus.SetValueByID(m.pendingFocusID)
	} else if ok {
		m.focus.Clear()
	}

	if ok {
		m.pendingActive = false
		return nil
	}
	if attempt >= applyRetryMax {
		m.pendingActive = false
		m.setNotice("warning", "could not restore the entry's stage and focus")
		return nil
	}
	return retryApplyPending(attempt + 1)
}

// adjustTime nudges the focused time field by one increment. Unreadable
// text falls back to the session's last known value for that field, then to
// the current hour snapped to the interval. The result stays on the viewed
// date: only the time-of-day wraps, the date never rolls over.
func (m *Model) adjustTime(up bool) {
	input, known := &m.start, &m.currentStart
	if m.zone == zoneEnd {
		input, known = &m.end, &m.currentEnd
	}

	step := m.increment()
	clock, ok := timeutil.ParseClock(input.Value())
	if !ok {
		clock = *known
	}
	if clock.IsZero() {
		clock = timeutil.SnapToInterval(time.Now(), int(step/time.Minute))
	}

	current := timeutil.CombineDateClock(m.date, clock)
	next := current.Add(step)
	if !up {
		next = current.Add(-step)
	}
	next = timeutil.CombineDateClock(m.date, next)
	*known = next
	input.SetValue(timeutil.FormatClock(next))
}

// saveCurrent validates the form and persists the entry. Validation errors
// aggregate into one notice; nothing reaches storage until all pass.
func (m Model) saveCurrent() (tea.Model, tea.Cmd) {
	var problems []string

	stageID := m.stage.SelectedID()
	if stageID == nil {
		problems = append(problems, "choose a stage")
	}

	startClock, okStart := timeutil.ParseClock(m.start.Value())
	if !okStart {
		problems = append(problems, "start time must be HH:MM")
	}
	endClock, okEnd := timeutil.ParseClock(m.end.Value())
	if !okEnd {
		problems = append(problems, "end time must be HH:MM")
	}

	var start, end time.Time
	if okStart && okEnd {
		start = timeutil.CombineDateClock(m.date, startClock)
		end = timeutil.CombineDateClock(m.date, endClock)
		if !end.After(start) {
			problems = append(problems, "end must be after start")
		}
	}

	if len(problems) > 0 {
		m.setNotice("error", strings.Join(problems, "; "))
		return m, nil
	}

	entry := model.LogEntry{
		ID:      m.editingID,
		StageID: *stageID,
		FocusID: m.focus.SelectedID(),
		Start:   start,
		End:     end,
	}
	m.currentStart = start
	m.currentEnd = end
	m.clearNotice()
	return m, saveEntry(m.store, entry)
}

// requestDelete opens the confirmation prompt. Deletion is only offered
// while the table holds focus and a row was chosen this session: there is
// no implicit first-row fallback.
func (m Model) requestDelete() (tea.Model, tea.Cmd) {
	entry, ok := m.deleteTarget()
	if !ok {
		m.setNotice("warning", "focus the day table and pick a row before deleting")
		return m, nil
	}

	m.confirmID = entry.ID
	m.confirm = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(fmt.Sprintf("Delete the %s %s entry?",
				entry.Start.Format(timeutil.ClockLayout), entry.StageName)).
			Affirmative("Delete").
			Negative("Keep"),
	))
	return m, m.confirm.Init()
}

// deleteTarget is the row under the table cursor; the confirmation prompt
// names it, so a moved highlight cannot delete something unseen.
func (m Model) deleteTarget() (model.LogEntry, bool) {
	if m.zone == zoneTable && m.rowChosen {
		if e := m.overview.Selected(); e != nil {
			return *e, true
		}
	}
	return model.LogEntry{}, false
}

// updateConfirm routes messages to the delete confirmation until it
// resolves.
func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Quit) {
		return m, tea.Quit
	}

	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	if m.confirm.State == huh.StateCompleted {
		confirmed := m.confirm.GetBool("confirm")
		id := m.confirmID
		m.confirm = nil
		m.confirmID = 0
		if confirmed {
			return m, deleteEntry(m.store, id)
		}
		return m, nil
	}
	if m.confirm.State == huh.StateAborted {
		m.confirm = nil
		m.confirmID = 0
		return m, nil
	}

	return m, cmd
}

// View renders the full session.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.layout.RenderHeader("timesheet", m.date.Format("Mon 2006-01-02"))

	form := m.renderForm()
	overview := m.renderOverview()
	content := lipgloss.JoinHorizontal(lipgloss.Top, overview, form)

	if m.confirm != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.confirm.View())
	}

	status := m.statusLine()
	return m.layout.RenderWithFrame(header, content, m.layout.RenderStatusBar(status))
}

func (m Model) renderForm() string {
	title := theme.FormTitleStyle.Render("New entry")
	if m.editingID != 0 {
		title = theme.EditingTitleStyle.Render(fmt.Sprintf("Editing entry %d", m.editingID))
	}

	rows := []string{
		title,
		"",
		theme.FormLabelStyle.Render("Project"),
		m.project.View(),
		theme.FormLabelStyle.Render("Stage"),
		m.stage.View(),
		theme.FormLabelStyle.Render("Focus"),
		m.focus.View(),
		theme.FormLabelStyle.Render("Start"),
		m.start.View(),
		theme.FormLabelStyle.Render("End"),
		m.end.View(),
	}

	style := theme.PanelStyle
	if m.zone != zoneTable {
		style = theme.FocusedPanelStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderOverview() string {
	style := theme.PanelStyle
	if m.zone == zoneTable {
		style = theme.FocusedPanelStyle
	}
	return style.Render(m.overview.View())
}

func (m Model) statusLine() string {
	if m.notice != "" {
		return theme.NoticeStyle(m.noticeSeverity).Render(m.notice)
	}

	var hints []string
	for _, b := range m.keys.ShortHelp() {
		hints = append(hints, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	return theme.HelpStyle.Render(strings.Join(hints, " · "))
}
