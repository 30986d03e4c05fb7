package usecase

import (
	"context"

	"task-management-api/internal/entities"
)

// AuthUsecaseInterface abstracts authentication operations for the delivery
// layer. ResolveToken turns a raw bearer token into a principal; every other
// usecase takes that principal explicitly.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, params entities.RegisterParams) (*entities.AuthResult, error)
	Login(ctx context.Context, params entities.LoginParams) (*entities.AuthResult, error)
	Logout(ctx context.Context, tokenID int64) error
	ResolveToken(ctx context.Context, raw string) (*entities.User, int64, error)
	CurrentUser(ctx context.Context, principal int64) (*entities.User, error)
}

// TeamUsecaseInterface abstracts team operations.
type TeamUsecaseInterface interface {
	ListTeams(ctx context.Context, principal int64) ([]entities.Team, error)
	CreateTeam(ctx context.Context, principal int64, name string) (*entities.Team, error)
	GetTeam(ctx context.Context, principal, teamID int64) (*entities.Team, error)
	UpdateTeam(ctx context.Context, principal, teamID int64, name string) (*entities.Team, error)
	DeleteTeam(ctx context.Context, principal, teamID int64) error
}

// ProjectUsecaseInterface abstracts project operations.
type ProjectUsecaseInterface interface {
	ListProjects(ctx context.Context, principal, teamID int64) ([]entities.Project, error)
	CreateProject(ctx context.Context, principal, teamID int64, name string) (*entities.Project, error)
}

// TaskUsecaseInterface abstracts task operations.
type TaskUsecaseInterface interface {
	ListTasks(ctx context.Context, principal, projectID int64) ([]entities.Task, error)
	CreateTask(ctx context.Context, principal, projectID int64, params entities.CreateTaskParams) (*entities.Task, error)
	UpdateTask(ctx context.Context, principal, projectID, taskID int64, params entities.UpdateTaskParams) (*entities.Task, error)
	UpdateTaskStatus(ctx context.Context, principal, projectID, taskID int64, status string) (*entities.Task, error)
}
