package postgres

import (
	"context"
	"errors"
	"fmt"

	"task-management-api/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	listTeamsQuery = `
SELECT id, name, user_id, created_at, updated_at
FROM teams
WHERE user_id=$1
ORDER BY created_at DESC, id DESC`
	insertTeamQuery = `
INSERT INTO teams(name, user_id)
VALUES ($1, $2)
RETURNING id, name, user_id, created_at, updated_at`
	updateTeamQuery = `
UPDATE teams SET name=$2, updated_at=now()
WHERE id=$1
RETURNING id, name, user_id, created_at, updated_at`
	deleteTeamQuery = `DELETE FROM teams WHERE id=$1`
)

// ListTeams returns the user's teams, newest first. The id tiebreak keeps the
// order deterministic for teams created within the same instant.
func (p *Postgres) ListTeams(ctx context.Context, userID int64) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, listTeamsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}
	return teams, nil
}

// CreateTeam inserts a team owned by the given user and returns the stored row.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, insertTeamQuery, team.Name, team.UserID).
		Scan(&t.ID, &t.Name, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}

	p.log.Infow("team created", "team_id", t.ID, "user_id", t.UserID)
	return &t, nil
}

// UpdateTeam renames a team and returns the updated row. Ownership must be
// resolved by the caller before this runs.
func (p *Postgres) UpdateTeam(ctx context.Context, teamID int64, name string) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, updateTeamQuery, teamID, name).
		Scan(&t.ID, &t.Name, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("update team: %w", err)
	}
	return &t, nil
}

// DeleteTeam removes a team; owned projects and tasks go with it via
// ON DELETE CASCADE.
func (p *Postgres) DeleteTeam(ctx context.Context, teamID int64) error {
	tag, err := p.db.Exec(ctx, deleteTeamQuery, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}

	p.log.Infow("team deleted", "team_id", teamID)
	return nil
}
