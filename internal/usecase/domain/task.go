// Package domain contains application usecases orchestrating domain logic by
// task.
package domain

import (
	"context"

	"task-management-api/internal/entities"
)

// ListTasks returns a project's tasks after resolving the project's ownership
// chain for the principal.
func (u *Usecase) ListTasks(ctx context.Context, principal, projectID int64) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.ResolveProject(ctx, principal, projectID); err != nil {
		return nil, err
	}
	return u.repo.ListTasks(ctx, projectID)
}

// CreateTask creates a task in a project reachable from the principal. Status
// is optional and defaults to pending.
func (u *Usecase) CreateTask(ctx context.Context, principal, projectID int64, params entities.CreateTaskParams) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.ResolveProject(ctx, principal, projectID); err != nil {
		return nil, err
	}

	ve := entities.NewValidationError()
	checkResourceName(ve, params.Name)
	if params.Status != nil {
		checkStatus(ve, *params.Status)
	}
	if !ve.Empty() {
		return nil, ve
	}

	status := entities.StatusPending
	if params.Status != nil {
		status = entities.TaskStatus(*params.Status)
	}

	return u.repo.CreateTask(ctx, entities.Task{
		Name:      params.Name,
		Status:    status,
		ProjectID: projectID,
	})
}

// UpdateTask applies a partial update to a task reachable from the principal
// through the path project id. Omitted fields keep their stored values.
func (u *Usecase) UpdateTask(ctx context.Context, principal, projectID, taskID int64, params entities.UpdateTaskParams) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.ResolveTask(ctx, principal, projectID, taskID); err != nil {
		return nil, err
	}

	ve := entities.NewValidationError()
	if params.Name != nil {
		checkResourceName(ve, *params.Name)
	}
	if params.Status != nil {
		checkStatus(ve, *params.Status)
	}
	if !ve.Empty() {
		return nil, ve
	}

	var status *entities.TaskStatus
	if params.Status != nil {
		s := entities.TaskStatus(*params.Status)
		status = &s
	}

	return u.repo.UpdateTask(ctx, taskID, params.Name, status)
}

// UpdateTaskStatus changes only the status of a task reachable from the
// principal.
func (u *Usecase) UpdateTaskStatus(ctx context.Context, principal, projectID, taskID int64, status string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.ResolveTask(ctx, principal, projectID, taskID); err != nil {
		return nil, err
	}

	ve := entities.NewValidationError()
	checkStatus(ve, status)
	if !ve.Empty() {
		return nil, ve
	}

	s := entities.TaskStatus(status)
	return u.repo.UpdateTask(ctx, taskID, nil, &s)
}
