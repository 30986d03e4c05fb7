// Package entities contains core business entities.
package entities

import "time"

// User is a domain representation of an account owner.
type User struct {
	ID              int64
	Name            string
	Email           string
	PasswordHash    string
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RegisterParams carries registration input before validation.
type RegisterParams struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// LoginParams carries login credentials before validation.
type LoginParams struct {
	Email    string
	Password string
}

// AuthResult is returned by register/login with a freshly issued token.
type AuthResult struct {
	User  User
	Token string
}
