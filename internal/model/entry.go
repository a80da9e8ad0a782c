package model

import "time"

// LogEntry is a recorded interval of work. Start and End are local naive
// timestamps; End is always strictly after Start for persisted entries.
type LogEntry struct {
	ID      int64     `json:"id" db:"id"`
	StageID int64     `json:"stage_id" db:"stage_id"`
	FocusID *int64    `json:"focus_id,omitempty" db:"focus_id"`
	Start   time.Time `json:"start" db:"start"`
	End     time.Time `json:"end" db:"end"`

	// Joined display columns, populated by day-list queries.
	StageName   string  `json:"stage_name,omitempty" db:"stage_name"`
	ProjectID   int64   `json:"project_id,omitempty" db:"project_id"`
	ProjectName string  `json:"project_name,omitempty" db:"project_name"`
	FocusName   *string `json:"focus_name,omitempty" db:"focus_name"`
}

// Duration returns the length of the interval.
func (e LogEntry) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// DayReportRow is one line of the per-day rollup: total hours for a
// client/project/stage grouping.
type DayReportRow struct {
	ClientName  *string `db:"client_name"`
	ProjectName string  `db:"project_name"`
	StageName   string  `db:"stage_name"`
	Hours       float64 `db:"hours"`
}

// WeekReportRow is one line of the weekly pivot: hours per weekday for a
// project/stage pair, plus the week total.
type WeekReportRow struct {
	ProjectName string  `db:"project"`
	StageName   string  `db:"stage"`
	Mon         float64 `db:"mon"`
	Tue         float64 `db:"tue"`
	Wed         float64 `db:"wed"`
	Thu         float64 `db:"thu"`
	Fri         float64 `db:"fri"`
	Sat         float64 `db:"sat"`
	Sun         float64 `db:"sun"`
	Total       float64 `db:"total"`
}
