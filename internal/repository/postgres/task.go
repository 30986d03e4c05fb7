package postgres

import (
	"context"
	"errors"
	"fmt"

	"task-management-api/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	listTasksQuery = `
SELECT id, name, status, project_id, created_at, updated_at
FROM tasks
WHERE project_id=$1
ORDER BY id`
	insertTaskQuery = `
INSERT INTO tasks(name, status, project_id)
VALUES ($1, $2, $3)
RETURNING id, name, status, project_id, created_at, updated_at`
	updateTaskQuery = `
UPDATE tasks
SET name=COALESCE($2, name), status=COALESCE($3, status), updated_at=now()
WHERE id=$1
RETURNING id, name, status, project_id, created_at, updated_at`
)

// ListTasks returns a project's tasks in insertion order.
func (p *Postgres) ListTasks(ctx context.Context, projectID int64) ([]entities.Task, error) {
	rows, err := p.db.Query(ctx, listTasksQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		var tk entities.Task
		if err := rows.Scan(&tk.ID, &tk.Name, &tk.Status, &tk.ProjectID, &tk.CreatedAt, &tk.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, tk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask inserts a task and returns the stored row.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	var tk entities.Task
	err := p.db.QueryRow(ctx, insertTaskQuery, task.Name, task.Status, task.ProjectID).
		Scan(&tk.ID, &tk.Name, &tk.Status, &tk.ProjectID, &tk.CreatedAt, &tk.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	p.log.Infow("task created", "task_id", tk.ID, "project_id", tk.ProjectID)
	return &tk, nil
}

// UpdateTask applies a partial update (nil keeps the stored value) and
// returns the freshly updated row. Concurrent updates are last-write-wins;
// there is no version column.
func (p *Postgres) UpdateTask(ctx context.Context, taskID int64, name *string, status *entities.TaskStatus) (*entities.Task, error) {
	var tk entities.Task
	err := p.db.QueryRow(ctx, updateTaskQuery, taskID, name, status).
		Scan(&tk.ID, &tk.Name, &tk.Status, &tk.ProjectID, &tk.CreatedAt, &tk.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &tk, nil
}
