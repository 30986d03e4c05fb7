package postgres

import (
	"context"
	"errors"
	"fmt"

	"task-management-api/internal/entities"

	"github.com/jackc/pgx/v5"
)

// Each resolve query spans the full ownership chain in one lookup. A row
// owned by another user yields pgx.ErrNoRows exactly like a row that does not
// exist, which keeps the two cases indistinguishable to callers.
const (
	resolveTeamQuery = `
SELECT id, name, user_id, created_at, updated_at
FROM teams
WHERE id=$1 AND user_id=$2`
	resolveProjectQuery = `
SELECT p.id, p.name, p.team_id, p.created_at, p.updated_at
FROM projects p
JOIN teams t ON t.id = p.team_id
WHERE p.id=$1 AND t.user_id=$2`
	resolveTaskQuery = `
SELECT tk.id, tk.name, tk.status, tk.project_id, tk.created_at, tk.updated_at
FROM tasks tk
JOIN projects p ON p.id = tk.project_id
JOIN teams t ON t.id = p.team_id
WHERE tk.id=$1 AND p.id=$2 AND t.user_id=$3`
)

// ResolveTeam returns the team iff it exists and is owned by the user.
func (p *Postgres) ResolveTeam(ctx context.Context, userID, teamID int64) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, resolveTeamQuery, teamID, userID).
		Scan(&t.ID, &t.Name, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("resolve team: %w", err)
	}
	return &t, nil
}

// ResolveProject returns the project iff its team is owned by the user.
func (p *Postgres) ResolveProject(ctx context.Context, userID, projectID int64) (*entities.Project, error) {
	var pr entities.Project
	err := p.db.QueryRow(ctx, resolveProjectQuery, projectID, userID).
		Scan(&pr.ID, &pr.Name, &pr.TeamID, &pr.CreatedAt, &pr.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("resolve project: %w", err)
	}
	return &pr, nil
}

// ResolveTask returns the task iff it belongs to the named project and that
// project's team is owned by the user. A task reached through the wrong
// project id is not found even when the task itself belongs to the user.
func (p *Postgres) ResolveTask(ctx context.Context, userID, projectID, taskID int64) (*entities.Task, error) {
	var tk entities.Task
	err := p.db.QueryRow(ctx, resolveTaskQuery, taskID, projectID, userID).
		Scan(&tk.ID, &tk.Name, &tk.Status, &tk.ProjectID, &tk.CreatedAt, &tk.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("resolve task: %w", err)
	}
	return &tk, nil
}
