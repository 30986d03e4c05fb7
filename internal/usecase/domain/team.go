// Package domain contains application usecases orchestrating domain logic by
// team.
package domain

import (
	"context"

	"task-management-api/internal/entities"
)

// ListTeams returns the principal's teams, newest first.
func (u *Usecase) ListTeams(ctx context.Context, principal int64) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTeams(ctx, principal)
}

// CreateTeam creates a team owned by the principal.
func (u *Usecase) CreateTeam(ctx context.Context, principal int64, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ve := entities.NewValidationError()
	checkResourceName(ve, name)
	if !ve.Empty() {
		return nil, ve
	}

	return u.repo.CreateTeam(ctx, entities.Team{Name: name, UserID: principal})
}

// GetTeam returns a team iff it is owned by the principal.
func (u *Usecase) GetTeam(ctx context.Context, principal, teamID int64) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ResolveTeam(ctx, principal, teamID)
}

// UpdateTeam renames a team owned by the principal. Ownership is resolved
// before the payload is validated, so a foreign team never leaks validation
// responses.
func (u *Usecase) UpdateTeam(ctx context.Context, principal, teamID int64, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.ResolveTeam(ctx, principal, teamID); err != nil {
		return nil, err
	}

	ve := entities.NewValidationError()
	checkResourceName(ve, name)
	if !ve.Empty() {
		return nil, ve
	}

	return u.repo.UpdateTeam(ctx, teamID, name)
}

// DeleteTeam removes a team owned by the principal, cascading to its projects
// and tasks.
func (u *Usecase) DeleteTeam(ctx context.Context, principal, teamID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.ResolveTeam(ctx, principal, teamID); err != nil {
		return err
	}
	return u.repo.DeleteTeam(ctx, teamID)
}
