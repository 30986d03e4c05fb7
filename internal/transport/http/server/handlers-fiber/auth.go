package handlers_fiber

import (
	"net/http"

	"task-management-api/internal/entities"
	"task-management-api/internal/mapper"
	"task-management-api/internal/transport/http/dto"
	"task-management-api/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

const tokenType = "Bearer"

// Register creates a user account and returns a first bearer token.
func (h *Handler) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	res, err := h.uc.Register(c.Context(), entities.RegisterParams{
		Name:                 body.Name,
		Email:                body.Email,
		Password:             body.Password,
		PasswordConfirmation: body.PasswordConfirmation,
	})
	if err != nil {
		h.log.Infow("registration rejected", "error", err.Error())
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusCreated, "user registered", dto.AuthData{
		User:      mapper.ToDTOUser(res.User),
		Token:     res.Token,
		TokenType: tokenType,
	})
}

// Login verifies credentials and issues a new bearer token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	res, err := h.uc.Login(c.Context(), entities.LoginParams{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusOK, "login successful", dto.LoginData{
		User:      mapper.ToDTOUserSummary(res.User),
		Token:     res.Token,
		TokenType: tokenType,
	})
}

// Logout revokes only the token presented with this request.
func (h *Handler) Logout(c *fiber.Ctx) error {
	tokenID, ok := middleware.TokenID(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}

	if err := h.uc.Logout(c.Context(), tokenID); err != nil {
		h.log.Errorw("logout failed", "token_id", tokenID, "error", err.Error())
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "logout successful", nil)
}

// Me returns the authenticated user.
func (h *Handler) Me(c *fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return writeError(c, entities.ErrUnauthenticated)
	}

	user, err := h.uc.CurrentUser(c.Context(), principal.ID)
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "", mapper.ToDTOUser(*user))
}
