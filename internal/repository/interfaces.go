// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"task-management-api/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user account operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	GetUserByID(ctx context.Context, userID int64) (*entities.User, error)
}

// TokenInterface exposes bearer token storage operations.
type TokenInterface interface {
	CreateToken(ctx context.Context, token entities.APIToken) (int64, error)
	GetToken(ctx context.Context, tokenID int64) (*entities.APIToken, error)
	TouchToken(ctx context.Context, tokenID int64) error
	DeleteToken(ctx context.Context, tokenID int64) error
}

// OwnershipInterface resolves the user->team->project->task chain. Each
// lookup spans the whole chain in one query, so a foreign resource and a
// missing one produce the same not-found error.
type OwnershipInterface interface {
	ResolveTeam(ctx context.Context, userID, teamID int64) (*entities.Team, error)
	ResolveProject(ctx context.Context, userID, projectID int64) (*entities.Project, error)
	ResolveTask(ctx context.Context, userID, projectID, taskID int64) (*entities.Task, error)
}

// TeamInterface exposes team CRUD operations.
type TeamInterface interface {
	ListTeams(ctx context.Context, userID int64) ([]entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	UpdateTeam(ctx context.Context, teamID int64, name string) (*entities.Team, error)
	DeleteTeam(ctx context.Context, teamID int64) error
}

// ProjectInterface exposes project operations.
type ProjectInterface interface {
	ListProjects(ctx context.Context, teamID int64) ([]entities.Project, error)
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
}

// TaskInterface exposes task operations.
type TaskInterface interface {
	ListTasks(ctx context.Context, projectID int64) ([]entities.Task, error)
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	UpdateTask(ctx context.Context, taskID int64, name *string, status *entities.TaskStatus) (*entities.Task, error)
}
