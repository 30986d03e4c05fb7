package handlers_fiber

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-management-api/internal/entities"
	"task-management-api/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func writeErrorResponse(t *testing.T, err error) (int, dto.Envelope) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, respErr := app.Test(req)
	require.NoError(t, respErr)
	defer resp.Body.Close()

	var body dto.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestWriteErrorValidation(t *testing.T) {
	ve := entities.NewValidationError()
	ve.Add("name", "name is required")
	ve.Add("status", "status must be one of: pending, in_progress, completed, cancelled")

	status, body := writeErrorResponse(t, ve)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.False(t, body.Success)
	require.Equal(t, "validation failed", body.Message)
	require.Contains(t, body.Errors, "name")
	require.Contains(t, body.Errors, "status")
}

func TestWriteErrorNotFoundMessages(t *testing.T) {
	tests := []struct {
		err     error
		message string
	}{
		{entities.ErrTeamNotFound, "team not found or no access"},
		{entities.ErrProjectNotFound, "project not found or no access"},
		{entities.ErrTaskNotFound, "task not found or no access"},
	}

	for _, tt := range tests {
		status, body := writeErrorResponse(t, tt.err)
		require.Equal(t, http.StatusNotFound, status)
		require.False(t, body.Success)
		require.Equal(t, tt.message, body.Message)
		require.Empty(t, body.Errors)
	}
}

func TestWriteErrorInvalidCredentials(t *testing.T) {
	status, body := writeErrorResponse(t, entities.ErrInvalidCredentials)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "invalid credentials", body.Message)
}

func TestWriteErrorInternalFaultIsOpaque(t *testing.T) {
	status, body := writeErrorResponse(t, errors.New("pq: connection refused"))
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "internal server error", body.Message)
}

func TestPathIDRejectsNonNumeric(t *testing.T) {
	app := fiber.New()
	app.Get("/teams/:id", func(c *fiber.Ctx) error {
		id, err := pathID(c, "id", entities.ErrTeamNotFound)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(id)
	})

	for _, path := range []string{"/teams/abc", "/teams/0", "/teams/-3"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode, "path %s", path)
		resp.Body.Close()
	}
}
