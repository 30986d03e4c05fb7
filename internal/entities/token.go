// Package entities contains core business entities.
package entities

import "time"

// APIToken is an opaque bearer credential bound to one user. The secret is
// never stored; only its SHA-256 hex digest is.
type APIToken struct {
	ID         int64
	UserID     int64
	Name       string
	TokenHash  string
	LastUsedAt *time.Time
	ExpiresAt  *time.Time
	CreatedAt  time.Time
}

// Expired reports whether the token has an expiry in the past.
func (t APIToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}
