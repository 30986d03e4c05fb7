package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"task-management-api/internal/entities"
	"task-management-api/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// writeError maps service errors to the uniform envelope. Not-found keeps the
// sentinel's resource-specific message; anything unexpected collapses to a
// generic 500 with the detail logged by the caller.
func writeError(c *fiber.Ctx, err error) error {
	var ve *entities.ValidationError

	switch {
	case errors.As(err, &ve):
		return c.Status(http.StatusUnprocessableEntity).JSON(dto.Envelope{
			Success: false,
			Message: "validation failed",
			Errors:  ve.Fields,
		})
	case errors.Is(err, entities.ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(dto.Envelope{
			Success: false,
			Message: "invalid credentials",
		})
	case errors.Is(err, entities.ErrUnauthenticated):
		return c.Status(http.StatusUnauthorized).JSON(dto.Envelope{
			Success: false,
			Message: "unauthenticated",
		})
	case errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrTaskNotFound),
		errors.Is(err, entities.ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(dto.Envelope{
			Success: false,
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(dto.Envelope{
			Success: false,
			Message: "internal server error",
		})
	}
}

func writeSuccess(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(dto.Envelope{
		Success: false,
		Message: "invalid body",
	})
}

// pathID parses a numeric path parameter. A non-numeric id can never match a
// stored row, so it reports the same not-found error the resolver would.
func pathID(c *fiber.Ctx, name string, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}
