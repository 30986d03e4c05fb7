package handlers_fiber

import (
	"net/http"

	"task-management-api/internal/entities"
	"task-management-api/internal/mapper"
	"task-management-api/internal/transport/http/dto"
	"task-management-api/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListTasks returns the tasks of a project reachable from the principal.
func (h *Handler) ListTasks(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}
	projectID, err := pathID(c, "projectId", entities.ErrProjectNotFound)
	if err != nil {
		return writeError(c, err)
	}

	tasks, err := h.uc.ListTasks(c.Context(), principal.ID, projectID)
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "", mapper.ToDTOTaskList(tasks))
}

// CreateTask creates a task inside a project reachable from the principal.
func (h *Handler) CreateTask(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}
	projectID, err := pathID(c, "projectId", entities.ErrProjectNotFound)
	if err != nil {
		return writeError(c, err)
	}

	var body dto.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	task, err := h.uc.CreateTask(c.Context(), principal.ID, projectID, entities.CreateTaskParams{
		Name:   body.Name,
		Status: body.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusCreated, "task created", mapper.ToDTOTask(*task))
}

// UpdateTask applies a partial update to a task addressed by project and task
// id. Both ids must match the stored chain.
func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}
	projectID, err := pathID(c, "projectId", entities.ErrTaskNotFound)
	if err != nil {
		return writeError(c, err)
	}
	taskID, err := pathID(c, "taskId", entities.ErrTaskNotFound)
	if err != nil {
		return writeError(c, err)
	}

	var body dto.UpdateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	task, err := h.uc.UpdateTask(c.Context(), principal.ID, projectID, taskID, entities.UpdateTaskParams{
		Name:   body.Name,
		Status: body.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "task updated", mapper.ToDTOTask(*task))
}

// UpdateTaskStatus changes only the task status.
func (h *Handler) UpdateTaskStatus(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}
	projectID, err := pathID(c, "projectId", entities.ErrTaskNotFound)
	if err != nil {
		return writeError(c, err)
	}
	taskID, err := pathID(c, "taskId", entities.ErrTaskNotFound)
	if err != nil {
		return writeError(c, err)
	}

	var body dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	task, err := h.uc.UpdateTaskStatus(c.Context(), principal.ID, projectID, taskID, body.Status)
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "task status updated", mapper.ToDTOTask(*task))
}
