package handlers_fiber

import (
	"net/http"

	"task-management-api/internal/entities"
	"task-management-api/internal/mapper"
	"task-management-api/internal/transport/http/dto"
	"task-management-api/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListProjects returns the projects of a team owned by the principal.
func (h *Handler) ListProjects(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}
	teamID, err := pathID(c, "teamId", entities.ErrTeamNotFound)
	if err != nil {
		return writeError(c, err)
	}

	projects, err := h.uc.ListProjects(c.Context(), principal.ID, teamID)
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "", mapper.ToDTOProjectList(projects))
}

// CreateProject creates a project inside a team owned by the principal.
func (h *Handler) CreateProject(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}
	teamID, err := pathID(c, "teamId", entities.ErrTeamNotFound)
	if err != nil {
		return writeError(c, err)
	}

	var body dto.NameRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	project, err := h.uc.CreateProject(c.Context(), principal.ID, teamID, body.Name)
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusCreated, "project created", mapper.ToDTOProject(*project))
}
