package postgres

import (
	"context"
	"errors"
	"fmt"

	"task-management-api/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertTokenQuery = `
INSERT INTO api_tokens(user_id, name, token_hash, expires_at)
VALUES ($1, $2, $3, $4)
RETURNING id`
	selectTokenQuery = `
SELECT id, user_id, name, token_hash, last_used_at, expires_at, created_at
FROM api_tokens WHERE id=$1`
	touchTokenQuery  = `UPDATE api_tokens SET last_used_at=now() WHERE id=$1`
	deleteTokenQuery = `DELETE FROM api_tokens WHERE id=$1`
)

// CreateToken stores a hashed bearer token and returns its id. The id becomes
// part of the plaintext handed to the client.
func (p *Postgres) CreateToken(ctx context.Context, token entities.APIToken) (int64, error) {
	var id int64
	err := p.db.QueryRow(ctx, insertTokenQuery, token.UserID, token.Name, token.TokenHash, token.ExpiresAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert token: %w", err)
	}
	return id, nil
}

// GetToken fetches a token row by id.
func (p *Postgres) GetToken(ctx context.Context, tokenID int64) (*entities.APIToken, error) {
	var t entities.APIToken
	err := p.db.QueryRow(ctx, selectTokenQuery, tokenID).
		Scan(&t.ID, &t.UserID, &t.Name, &t.TokenHash, &t.LastUsedAt, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTokenNotFound
		}
		return nil, fmt.Errorf("get token: %w", err)
	}
	return &t, nil
}

// TouchToken records token usage time.
func (p *Postgres) TouchToken(ctx context.Context, tokenID int64) error {
	if _, err := p.db.Exec(ctx, touchTokenQuery, tokenID); err != nil {
		return fmt.Errorf("touch token: %w", err)
	}
	return nil
}

// DeleteToken revokes a single token.
func (p *Postgres) DeleteToken(ctx context.Context, tokenID int64) error {
	if _, err := p.db.Exec(ctx, deleteTokenQuery, tokenID); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
