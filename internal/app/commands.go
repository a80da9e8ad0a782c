package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfrost-xyz/timesheet/internal/model"
	"github.com/rfrost-xyz/timesheet/internal/store"
)

// Storage access runs inside commands so results re-enter the session as
// messages on the update loop, never from another goroutine.

type projectsLoadedMsg struct {
	projects []model.Project
	err      error
}

type stagesLoadedMsg struct {
	projectID *int64
	stages    []model.Stage
	err       error
}

type focusesLoadedMsg struct {
	focuses []model.Focus
	err     error
}

type entriesLoadedMsg struct {
	date    time.Time
	entries []model.LogEntry
	err     error
}

type latestLoadedMsg struct {
	latest *model.LogEntry
	err    error
}

type saveResultMsg struct {
	id      int64
	created bool
	err     error
}

type deleteResultMsg struct {
	id  int64
	err error
}

// applyPendingMsg retries populating the stage and focus selectors after an
// entry was opened for editing, in case their options were still loading.
type applyPendingMsg struct {
	attempt int
}

const (
	applyRetryDelay = 100 * time.Millisecond
	applyRetryMax   = 10
)

func loadProjects(s store.Store) tea.Cmd {
	return func() tea.Msg {
		projects, err := s.ListProjects(context.Background())
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func loadStages(s store.Store, projectID *int64) tea.Cmd {
	return func() tea.Msg {
		stages, err := s.ListStages(context.Background(), projectID)
		return stagesLoadedMsg{projectID: projectID, stages: stages, err: err}
	}
}

func loadFocuses(s store.Store) tea.Cmd {
	return func() tea.Msg {
		focuses, err := s.ListFocuses(context.Background())
		return focusesLoadedMsg{focuses: focuses, err: err}
	}
}

func loadEntries(s store.Store, date time.Time) tea.Cmd {
	return func() tea.Msg {
		entries, err := s.ListEntriesForDay(context.Background(), date)
		return entriesLoadedMsg{date: date, entries: entries, err: err}
	}
}

func loadLatest(s store.Store) tea.Cmd {
	return func() tea.Msg {
		latest, err := s.LatestEntry(context.Background())
		return latestLoadedMsg{latest: latest, err: err}
	}
}

func saveEntry(s store.Store, e model.LogEntry) tea.Cmd {
	return func() tea.Msg {
		if e.ID == 0 {
			id, err := s.CreateEntry(context.Background(), e)
			return saveResultMsg{id: id, created: true, err: err}
		}
		err := s.UpdateEntry(context.Background(), e)
		return saveResultMsg{id: e.ID, err: err}
	}
}

func deleteEntry(s store.Store, id int64) tea.Cmd {
	return func() tea.Msg {
		err := s.DeleteEntry(context.Background(), id)
		return deleteResultMsg{id: id, err: err}
	}
}

func retryApplyPending(attempt int) tea.Cmd {
	return tea.Tick(applyRetryDelay, func(time.Time) tea.Msg {
		return applyPendingMsg{attempt: attempt}
	})
}
