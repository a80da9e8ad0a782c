package store

import (
	"context"
	"time"

	"github.com/rfrost-xyz/timesheet/internal/model"
)

// Store defines the persistence interface consumed by the editing session
// and the report commands. All write operations have single-row effect and
// report failure as an error rather than panicking across the boundary.
type Store interface {
	// === Catalog (read-only from the session's perspective) ===

	ListProjects(ctx context.Context) ([]model.Project, error)
	ListStages(ctx context.Context, projectID *int64) ([]model.Stage, error)
	ListFocuses(ctx context.Context) ([]model.Focus, error)

	// === Log entries ===

	ListEntriesForDay(ctx context.Context, date time.Time) ([]model.LogEntry, error)
	CreateEntry(ctx context.Context, e model.LogEntry) (int64, error)
	UpdateEntry(ctx context.Context, e model.LogEntry) error
	DeleteEntry(ctx context.Context, id int64) error
	LatestEntry(ctx context.Context) (*model.LogEntry, error)

	// === Reports ===

	DayReport(ctx context.Context, date time.Time) ([]model.DayReportRow, error)
	WeekReport(ctx context.Context, isoYear, isoWeek int) ([]model.WeekReportRow, error)

	// === Catalog seeding ===

	CreateClient(ctx context.Context, name string) (int64, error)
	CreateProject(ctx context.Context, p model.Project) (int64, error)
	CreateStage(ctx context.Context, s model.Stage) (int64, error)
	CreateFocus(ctx context.Context, name string) (int64, error)
}
