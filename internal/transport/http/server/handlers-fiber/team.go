package handlers_fiber

import (
	"net/http"

	"task-management-api/internal/entities"
	"task-management-api/internal/mapper"
	"task-management-api/internal/transport/http/dto"
	"task-management-api/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListTeams returns the principal's teams, newest first.
func (h *Handler) ListTeams(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}

	teams, err := h.uc.ListTeams(c.Context(), principal.ID)
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "", mapper.ToDTOTeamList(teams))
}

// CreateTeam creates a team owned by the principal.
func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}

	var body dto.NameRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	team, err := h.uc.CreateTeam(c.Context(), principal.ID, body.Name)
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusCreated, "team created", mapper.ToDTOTeam(*team))
}

// GetTeam returns a single team owned by the principal.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}
	teamID, err := pathID(c, "id", entities.ErrTeamNotFound)
	if err != nil {
		return writeError(c, err)
	}

	team, err := h.uc.GetTeam(c.Context(), principal.ID, teamID)
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "", mapper.ToDTOTeam(*team))
}

// UpdateTeam renames a team owned by the principal.
func (h *Handler) UpdateTeam(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}
	teamID, err := pathID(c, "id", entities.ErrTeamNotFound)
	if err != nil {
		return writeError(c, err)
	}

	var body dto.NameRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	team, err := h.uc.UpdateTeam(c.Context(), principal.ID, teamID, body.Name)
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "team updated", mapper.ToDTOTeam(*team))
}

// DeleteTeam removes a team owned by the principal, cascading to its projects
// and tasks.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}
	teamID, err := pathID(c, "id", entities.ErrTeamNotFound)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteTeam(c.Context(), principal.ID, teamID); err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "team deleted", nil)
}
