package middleware

import (
	"errors"
	"net/http"
	"strings"

	"task-management-api/internal/entities"
	"task-management-api/internal/transport/http/dto"
	"task-management-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	principalKey = "auth.user"
	tokenIDKey   = "auth.token_id"
)

// BearerAuth resolves the Authorization header to a user and stores the
// principal on the request. Handlers then pass the principal explicitly into
// usecases; nothing downstream reads ambient auth state.
func BearerAuth(log *zap.SugaredLogger, auth usecase.AuthUsecaseInterface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthenticated(c)
		}

		user, tokenID, err := auth.ResolveToken(c.Context(), raw)
		if err != nil {
			if !errors.Is(err, entities.ErrUnauthenticated) {
				log.Errorw("token resolution failed", "error", err)
				return c.Status(http.StatusInternalServerError).JSON(dto.Envelope{
					Success: false,
					Message: "internal server error",
				})
			}
			return unauthenticated(c)
		}

		c.Locals(principalKey, user)
		c.Locals(tokenIDKey, tokenID)
		return c.Next()
	}
}

// Principal returns the authenticated user attached by BearerAuth.
func Principal(c *fiber.Ctx) (*entities.User, bool) {
	user, ok := c.Locals(principalKey).(*entities.User)
	return user, ok
}

// TokenID returns the id of the token presented with the current request.
func TokenID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(tokenIDKey).(int64)
	return id, ok
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(dto.Envelope{
		Success: false,
		Message: "unauthenticated",
	})
}
