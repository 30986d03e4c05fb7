// Package domain contains application usecases orchestrating domain logic by
// authentication.
package domain

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"task-management-api/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenName = "auth_token"

// Register creates a user account and issues a first bearer token.
func (u *Usecase) Register(ctx context.Context, params entities.RegisterParams) (*entities.AuthResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ve := entities.NewValidationError()
	if params.Name == "" {
		ve.Add("name", "name is required")
	} else if len(params.Name) > maxNameLen {
		ve.Add("name", fmt.Sprintf("name must be at most %d characters", maxNameLen))
	}
	checkEmail(ve, params.Email)
	if params.Password == "" {
		ve.Add("password", "password is required")
	} else if len(params.Password) < minPasswordLen {
		ve.Add("password", fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	if params.Password != params.PasswordConfirmation {
		ve.Add("password", "password confirmation does not match")
	}
	if !ve.Empty() {
		return nil, ve
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.repo.CreateUser(ctx, entities.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, entities.ErrEmailTaken) {
			taken := entities.NewValidationError()
			taken.Add("email", "email has already been taken")
			return nil, taken
		}
		return nil, err
	}

	token, err := u.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	u.log.Infow("user registered", "user_id", user.ID)
	return &entities.AuthResult{User: *user, Token: token}, nil
}

// Login verifies credentials and issues a new bearer token. A wrong email and
// a wrong password produce the same error.
func (u *Usecase) Login(ctx context.Context, params entities.LoginParams) (*entities.AuthResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ve := entities.NewValidationError()
	checkEmail(ve, params.Email)
	if params.Password == "" {
		ve.Add("password", "password is required")
	}
	if !ve.Empty() {
		return nil, ve
	}

	user, err := u.repo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(params.Password)); err != nil {
		return nil, entities.ErrInvalidCredentials
	}

	token, err := u.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	u.log.Infow("user logged in", "user_id", user.ID)
	return &entities.AuthResult{User: *user, Token: token}, nil
}

// Logout revokes the single token presented with the current request.
func (u *Usecase) Logout(ctx context.Context, tokenID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.repo.DeleteToken(ctx, tokenID); err != nil {
		return err
	}
	u.log.Infow("token revoked", "token_id", tokenID)
	return nil
}

// CurrentUser loads the authenticated user's account.
func (u *Usecase) CurrentUser(ctx context.Context, principal int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetUserByID(ctx, principal)
}

// ResolveToken maps a raw "<id>|<secret>" bearer token to its user and token
// id. Any malformed, unknown, tampered or expired token yields
// ErrUnauthenticated.
func (u *Usecase) ResolveToken(ctx context.Context, raw string) (*entities.User, int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	idPart, secret, ok := strings.Cut(raw, "|")
	if !ok || secret == "" {
		return nil, 0, entities.ErrUnauthenticated
	}
	tokenID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return nil, 0, entities.ErrUnauthenticated
	}

	token, err := u.repo.GetToken(ctx, tokenID)
	if err != nil {
		if errors.Is(err, entities.ErrTokenNotFound) {
			return nil, 0, entities.ErrUnauthenticated
		}
		return nil, 0, err
	}

	if subtle.ConstantTimeCompare([]byte(hashSecret(secret)), []byte(token.TokenHash)) != 1 {
		return nil, 0, entities.ErrUnauthenticated
	}
	if token.Expired(time.Now()) {
		return nil, 0, entities.ErrUnauthenticated
	}

	if err := u.repo.TouchToken(ctx, token.ID); err != nil {
		u.log.Warnw("failed to touch token", "token_id", token.ID, "error", err)
	}

	user, err := u.repo.GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, 0, entities.ErrUnauthenticated
		}
		return nil, 0, err
	}
	return user, token.ID, nil
}

// issueToken stores a hashed secret and returns the "<id>|<secret>" plaintext.
func (u *Usecase) issueToken(ctx context.Context, userID int64) (string, error) {
	secret := newTokenSecret()

	token := entities.APIToken{
		UserID:    userID,
		Name:      tokenName,
		TokenHash: hashSecret(secret),
	}
	if ttl := u.auth.TokenTTL; ttl > 0 {
		exp := time.Now().Add(ttl)
		token.ExpiresAt = &exp
	}

	id, err := u.repo.CreateToken(ctx, token)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d|%s", id, secret), nil
}

func newTokenSecret() string {
	raw := uuid.NewString() + uuid.NewString()
	return strings.ReplaceAll(raw, "-", "")
}

func hashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
