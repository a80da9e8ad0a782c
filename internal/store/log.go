package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rfrost-xyz/timesheet/internal/model"
	"github.com/rfrost-xyz/timesheet/internal/timeutil"
)

const entryColumns = `
	l.id, l.stage_id, l.focus_id, l.start, l.end,
	s.name AS stage_name,
	p.id AS project_id,
	p.name AS project_name,
	f.name AS focus_name`

const entryJoins = `
	FROM log_entries l
	JOIN stages s ON l.stage_id = s.id
	JOIN projects p ON s.project_id = p.id
	LEFT JOIN focuses f ON l.focus_id = f.id`

// ListEntriesForDay retrieves the log entries whose start falls on the given
// calendar date, with joined display names, ordered by start ascending.
func (s *SQLiteStore) ListEntriesForDay(
	ctx context.Context,
	date time.Time,
) ([]model.LogEntry, error) {
	query := "SELECT" + entryColumns + entryJoins + `
	WHERE date(l.start) = date(?)
	ORDER BY l.start`

	rows, err := s.db.QueryxContext(ctx, query, date.Format(timeutil.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("querying entries for %s: %w",
			date.Format(timeutil.DateLayout), err)
	}
	defer rows.Close()

	var entries []model.LogEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateEntry inserts a new log entry and returns its assigned id.
func (s *SQLiteStore) CreateEntry(
	ctx context.Context,
	e model.LogEntry,
) (int64, error) {
	if !e.End.After(e.Start) {
		return 0, fmt.Errorf("entry end must be after start")
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO log_entries (stage_id, focus_id, start, end) VALUES (?, ?, ?, ?)",
		e.StageID, e.FocusID,
		timeutil.FormatDateTime(e.Start), timeutil.FormatDateTime(e.End),
	)
	if err != nil {
		return 0, fmt.Errorf("creating log entry: %w", err)
	}
	return res.LastInsertId()
}

// UpdateEntry rewrites all mutable fields of an existing log entry.
func (s *SQLiteStore) UpdateEntry(ctx context.Context, e model.LogEntry) error {
	if !e.End.After(e.Start) {
		return fmt.Errorf("entry end must be after start")
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE log_entries SET stage_id = ?, focus_id = ?, start = ?, end = ? WHERE id = ?",
		e.StageID, e.FocusID,
		timeutil.FormatDateTime(e.Start), timeutil.FormatDateTime(e.End),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating log entry %d: %w", e.ID, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("log entry %d not found", e.ID)
	}
	return nil
}

// DeleteEntry removes a log entry by id.
func (s *SQLiteStore) DeleteEntry(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM log_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting log entry %d: %w", id, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("log entry %d not found", id)
	}
	return nil
}

// LatestEntry retrieves the most recently ending log entry, or nil when the
// log is empty.
func (s *SQLiteStore) LatestEntry(ctx context.Context) (*model.LogEntry, error) {
	query := "SELECT" + entryColumns + entryJoins + `
	ORDER BY l.end DESC LIMIT 1`

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying latest entry: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, nil
	}
	e, err := scanEntry(rows)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// scanEntry scans a joined log-entry row and parses its wire timestamps.
func scanEntry(rows *sqlx.Rows) (model.LogEntry, error) {
	var (
		e        model.LogEntry
		startStr string
		endStr   string
	)

	err := rows.Scan(
		&e.ID, &e.StageID, &e.FocusID, &startStr, &endStr,
		&e.StageName, &e.ProjectID, &e.ProjectName, &e.FocusName,
	)
	if err != nil {
		return model.LogEntry{}, fmt.Errorf("scanning log entry row: %w", err)
	}

	start, ok := timeutil.ParseDateTime(startStr)
	if !ok {
		return model.LogEntry{}, fmt.Errorf("entry %d has malformed start %q", e.ID, startStr)
	}
	end, ok := timeutil.ParseDateTime(endStr)
	if !ok {
		return model.LogEntry{}, fmt.Errorf("entry %d has malformed end %q", e.ID, endStr)
	}
	e.Start = start
	e.End = end

	return e, nil
}
