package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/rfrost-xyz/timesheet/internal/model"
)

// ListProjects retrieves all projects with their client names, ordered by
// project name.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	const query = `
		SELECT p.id, p.name, p.code, p.sub_code, p.client_id, c.name AS client_name
		FROM projects p
		LEFT JOIN clients c ON p.client_id = c.id
		ORDER BY p.name`

	var projects []model.Project
	if err := s.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	return projects, nil
}

// ListStages retrieves stages with their project names, optionally scoped to
// a single project, ordered by project name then stage name.
func (s *SQLiteStore) ListStages(
	ctx context.Context,
	projectID *int64,
) ([]model.Stage, error) {
	query := `
		SELECT s.id, s.name, s.project_id, p.name AS project_name
		FROM stages s
		JOIN projects p ON s.project_id = p.id`
	var args []interface{}
	if projectID != nil {
		query += " WHERE s.project_id = ?"
		args = append(args, *projectID)
	}
	query += " ORDER BY p.name, s.name"

	var stages []model.Stage
	if err := s.db.SelectContext(ctx, &stages, query, args...); err != nil {
		return nil, fmt.Errorf("querying stages: %w", err)
	}
	return stages, nil
}

// ListFocuses retrieves all focuses ordered by name.
func (s *SQLiteStore) ListFocuses(ctx context.Context) ([]model.Focus, error) {
	var focuses []model.Focus
	err := s.db.SelectContext(ctx, &focuses,
		"SELECT id, name FROM focuses ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying focuses: %w", err)
	}
	return focuses, nil
}

// CreateClient inserts a new client and returns its assigned id.
func (s *SQLiteStore) CreateClient(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("client name must not be empty")
	}
	res, err := s.db.ExecContext(ctx, "INSERT INTO clients (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("creating client: %w", err)
	}
	return res.LastInsertId()
}

// CreateProject inserts a new project and returns its assigned id.
func (s *SQLiteStore) CreateProject(ctx context.Context, p model.Project) (int64, error) {
	if strings.TrimSpace(p.Name) == "" {
		return 0, fmt.Errorf("project name must not be empty")
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO projects (name, code, sub_code, client_id) VALUES (?, ?, ?, ?)",
		p.Name, p.Code, p.SubCode, p.ClientID,
	)
	if err != nil {
		return 0, fmt.Errorf("creating project %s: %w", p.Name, err)
	}
	return res.LastInsertId()
}

// CreateStage inserts a new stage under its project and returns its id.
func (s *SQLiteStore) CreateStage(ctx context.Context, st model.Stage) (int64, error) {
	if strings.TrimSpace(st.Name) == "" {
		return 0, fmt.Errorf("stage name must not be empty")
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO stages (name, project_id) VALUES (?, ?)",
		st.Name, st.ProjectID,
	)
	if err != nil {
		return 0, fmt.Errorf("creating stage %s: %w", st.Name, err)
	}
	return res.LastInsertId()
}

// CreateFocus inserts a new focus and returns its assigned id.
func (s *SQLiteStore) CreateFocus(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("focus name must not be empty")
	}
	res, err := s.db.ExecContext(ctx, "INSERT INTO focuses (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("creating focus: %w", err)
	}
	return res.LastInsertId()
}
