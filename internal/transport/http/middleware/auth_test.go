package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-management-api/internal/entities"
	"task-management-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authMock struct{ mock.Mock }

var _ usecase.AuthUsecaseInterface = (*authMock)(nil)

func (m *authMock) Register(ctx context.Context, params entities.RegisterParams) (*entities.AuthResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthResult), args.Error(1)
}

func (m *authMock) Login(ctx context.Context, params entities.LoginParams) (*entities.AuthResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthResult), args.Error(1)
}

func (m *authMock) Logout(ctx context.Context, tokenID int64) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *authMock) ResolveToken(ctx context.Context, raw string) (*entities.User, int64, error) {
	args := m.Called(ctx, raw)
	var user *entities.User
	if args.Get(0) != nil {
		user = args.Get(0).(*entities.User)
	}
	return user, args.Get(1).(int64), args.Error(2)
}

func (m *authMock) CurrentUser(ctx context.Context, principal int64) (*entities.User, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func newAuthApp(auth usecase.AuthUsecaseInterface) *fiber.App {
	app := fiber.New()
	app.Use(BearerAuth(zap.NewNop().Sugar(), auth))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		user, ok := Principal(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		tokenID, _ := TokenID(c)
		return c.JSON(fiber.Map{"user_id": user.ID, "token_id": tokenID})
	})
	return app
}

func TestBearerAuthMissingHeader(t *testing.T) {
	auth := &authMock{}
	app := newAuthApp(auth)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	auth.AssertNotCalled(t, "ResolveToken", mock.Anything, mock.Anything)
}

func TestBearerAuthMalformedHeader(t *testing.T) {
	auth := &authMock{}
	app := newAuthApp(auth)

	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
		resp.Body.Close()
	}
}

func TestBearerAuthRejectsUnknownToken(t *testing.T) {
	auth := &authMock{}
	auth.On("ResolveToken", mock.Anything, "1|bad").Return(nil, int64(0), entities.ErrUnauthenticated)
	app := newAuthApp(auth)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer 1|bad")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBearerAuthAttachesPrincipal(t *testing.T) {
	auth := &authMock{}
	auth.On("ResolveToken", mock.Anything, "5|good").
		Return(&entities.User{ID: 2, Name: "Bob"}, int64(5), nil)
	app := newAuthApp(auth)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer 5|good")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}
