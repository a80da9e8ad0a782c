package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rfrost-xyz/timesheet/internal/model"
	"github.com/rfrost-xyz/timesheet/internal/timeutil"
)

// DayReport aggregates logged hours for a single date, grouped by
// client/project/stage and ordered by project.
func (s *SQLiteStore) DayReport(
	ctx context.Context,
	date time.Time,
) ([]model.DayReportRow, error) {
	const query = `
		SELECT
			c.name AS client_name,
			p.name AS project_name,
			s.name AS stage_name,
			ROUND(SUM(julianday(l.end) - julianday(l.start)) * 24, 2) AS hours
		FROM log_entries l
		JOIN stages s ON l.stage_id = s.id
		JOIN projects p ON s.project_id = p.id
		LEFT JOIN clients c ON p.client_id = c.id
		WHERE date(l.start) = date(?)
		GROUP BY c.name, p.name, s.name
		ORDER BY p.name, s.name`

	var report []model.DayReportRow
	err := s.db.SelectContext(ctx, &report, query, date.Format(timeutil.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("querying day report: %w", err)
	}
	return report, nil
}

// WeekReport pivots logged hours over an ISO week into one row per
// project/stage pair with a column per weekday (Monday first) and a total.
func (s *SQLiteStore) WeekReport(
	ctx context.Context,
	isoYear, isoWeek int,
) ([]model.WeekReportRow, error) {
	if isoWeek < 1 || isoWeek > 53 {
		return nil, fmt.Errorf("iso week %d out of range", isoWeek)
	}

	// Jan 4 always falls in ISO week 1; walk back to its Monday and
	// forward to the target week.
	const query = `
		WITH target_week AS (
			SELECT date(
				date(date(? || '-01-04'),
					'-' || CAST(((CAST(strftime('%w', date(? || '-01-04')) AS INTEGER) + 6) % 7) AS TEXT) || ' days'),
				'+' || CAST(((? - 1) * 7) AS TEXT) || ' days'
			) AS monday
		),
		durations AS (
			SELECT
				p.name AS project_name,
				s.name AS stage_name,
				(julianday(l.end) - julianday(l.start)) * 24.0 AS hours,
				date(l.start) AS log_date
			FROM log_entries l
			JOIN stages s ON l.stage_id = s.id
			JOIN projects p ON s.project_id = p.id
			CROSS JOIN target_week tw
			WHERE l.start >= tw.monday AND l.start < date(tw.monday, '+7 days')
		)
		SELECT
			d.project_name AS project,
			d.stage_name AS stage,
			ROUND(SUM(CASE WHEN d.log_date = tw.monday THEN d.hours ELSE 0 END), 2) AS mon,
			ROUND(SUM(CASE WHEN d.log_date = date(tw.monday, '+1 day') THEN d.hours ELSE 0 END), 2) AS tue,
			ROUND(SUM(CASE WHEN d.log_date = date(tw.monday, '+2 days') THEN d.hours ELSE 0 END), 2) AS wed,
			ROUND(SUM(CASE WHEN d.log_date = date(tw.monday, '+3 days') THEN d.hours ELSE 0 END), 2) AS thu,
			ROUND(SUM(CASE WHEN d.log_date = date(tw.monday, '+4 days') THEN d.hours ELSE 0 END), 2) AS fri,
			ROUND(SUM(CASE WHEN d.log_date = date(tw.monday, '+5 days') THEN d.hours ELSE 0 END), 2) AS sat,
			ROUND(SUM(CASE WHEN d.log_date = date(tw.monday, '+6 days') THEN d.hours ELSE 0 END), 2) AS sun,
			ROUND(SUM(d.hours), 2) AS total
		FROM durations d
		CROSS JOIN target_week tw
		GROUP BY d.project_name, d.stage_name
		ORDER BY project, stage`

	year := fmt.Sprintf("%04d", isoYear)
	var report []model.WeekReportRow
	err := s.db.SelectContext(ctx, &report, query, year, year, isoWeek)
	if err != nil {
		return nil, fmt.Errorf("querying week report: %w", err)
	}
	return report, nil
}
