// Package domain contains application usecases orchestrating domain logic by
// project.
package domain

import (
	"context"

	"task-management-api/internal/entities"
)

// ListProjects returns a team's projects after resolving team ownership for
// the principal.
func (u *Usecase) ListProjects(ctx context.Context, principal, teamID int64) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.ResolveTeam(ctx, principal, teamID); err != nil {
		return nil, err
	}
	return u.repo.ListProjects(ctx, teamID)
}

// CreateProject creates a project inside a team owned by the principal.
func (u *Usecase) CreateProject(ctx context.Context, principal, teamID int64, name string) (*entities.Project, error) {
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

	return u.repo.CreateProject(ctx, entities.Project{Name: name, TeamID: teamID})
}
