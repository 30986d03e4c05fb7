package postgres

import (
	"context"
	"fmt"

	"task-management-api/internal/entities"
)

const (
	listProjectsQuery = `
SELECT id, name, team_id, created_at, updated_at
FROM projects
WHERE team_id=$1
ORDER BY id`
	insertProjectQuery = `
INSERT INTO projects(name, team_id)
VALUES ($1, $2)
RETURNING id, name, team_id, created_at, updated_at`
)

// ListProjects returns a team's projects in insertion order.
func (p *Postgres) ListProjects(ctx context.Context, teamID int64) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, listProjectsQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		var pr entities.Project
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.TeamID, &pr.CreatedAt, &pr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// CreateProject inserts a project into a team and returns the stored row.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	var pr entities.Project
	err := p.db.QueryRow(ctx, insertProjectQuery, project.Name, project.TeamID).
		Scan(&pr.ID, &pr.Name, &pr.TeamID, &pr.CreatedAt, &pr.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	p.log.Infow("project created", "project_id", pr.ID, "team_id", pr.TeamID)
	return &pr, nil
}
