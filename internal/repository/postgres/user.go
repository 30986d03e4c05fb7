package postgres

import (
	"context"
	"errors"
	"fmt"

	"task-management-api/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertUserQuery = `
INSERT INTO users(name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, name, email, password_hash, email_verified_at, created_at, updated_at`
	selectUserByEmailQuery = `
SELECT id, name, email, password_hash, email_verified_at, created_at, updated_at
FROM users WHERE email=$1`
	selectUserByIDQuery = `
SELECT id, name, email, password_hash, email_verified_at, created_at, updated_at
FROM users WHERE id=$1`
)

// CreateUser inserts a user and returns the stored row. A unique email
// violation maps to ErrEmailTaken.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, insertUserQuery, user.Name, user.Email, user.PasswordHash).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.EmailVerifiedAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID)
	return &u, nil
}

// GetUserByEmail fetches a user by unique email.
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByEmailQuery, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.EmailVerifiedAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// GetUserByID fetches a user by id.
func (p *Postgres) GetUserByID(ctx context.Context, userID int64) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByIDQuery, userID).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.EmailVerifiedAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}
