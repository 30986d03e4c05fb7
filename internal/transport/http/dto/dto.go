// Package dto defines transport representations of the API.
package dto

import "time"

// Envelope is the uniform JSON response wrapper.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// User is the public representation of an account.
type User struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// UserSummary is the reduced user projection returned by login.
type UserSummary struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
}

// AuthData is the payload of register responses.
type AuthData struct {
	User      User   `json:"user"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// LoginData is the payload of login responses.
type LoginData struct {
	User      UserSummary `json:"user"`
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
}

// Team is the transport representation of a team.
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Project is the transport representation of a project.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TeamID    int64     `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Task is the transport representation of a task.
type Task struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	ProjectID int64     `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NameRequest is the body of team and project create/update endpoints.
type NameRequest struct {
	Name string `json:"name"`
}

// CreateTaskRequest is the body of POST /projects/{id}/tasks.
type CreateTaskRequest struct {
	Name   string  `json:"name"`
	Status *string `json:"status"`
}

// UpdateTaskRequest is the body of PUT /projects/{id}/tasks/{id}.
type UpdateTaskRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// UpdateTaskStatusRequest is the body of the status-only PATCH endpoint.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}
