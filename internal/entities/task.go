// Package entities contains core business entities.
package entities

import "time"

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// StatusPending is the initial state of a task.
	StatusPending TaskStatus = "pending"
	// StatusInProgress marks a task as started.
	StatusInProgress TaskStatus = "in_progress"
	// StatusCompleted marks a task as done.
	StatusCompleted TaskStatus = "completed"
	// StatusCancelled marks a task as abandoned.
	StatusCancelled TaskStatus = "cancelled"
)

// ValidTaskStatus reports whether s is one of the known statuses.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Task belongs to a project; its effective owner is the project's team's owner.
type Task struct {
	ID        int64
	Name      string
	Status    TaskStatus
	ProjectID int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateTaskParams carries task creation input before validation. Status is
// optional and defaults to pending.
type CreateTaskParams struct {
	Name   string
	Status *string
}

// UpdateTaskParams carries a partial task update. A nil field is left
// untouched; a present field must pass validation.
type UpdateTaskParams struct {
	Name   *string
	Status *string
}
