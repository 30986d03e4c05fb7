package domain

import (
	"fmt"
	"net/mail"

	"task-management-api/internal/entities"
)

const (
	minNameLen     = 3
	maxNameLen     = 255
	minPasswordLen = 4
	maxEmailLen    = 255
)

// checkResourceName enforces the shared name rule for teams, projects and
// tasks: required, 3-255 characters.
func checkResourceName(ve *entities.ValidationError, name string) {
	if name == "" {
		ve.Add("name", "name is required")
		return
	}
	if len(name) < minNameLen || len(name) > maxNameLen {
		ve.Add("name", fmt.Sprintf("name must be between %d and %d characters", minNameLen, maxNameLen))
	}
}

func checkStatus(ve *entities.ValidationError, status string) {
	if status == "" {
		ve.Add("status", "status is required")
		return
	}
	if !entities.ValidTaskStatus(status) {
		ve.Add("status", "status must be one of: pending, in_progress, completed, cancelled")
	}
}

func checkEmail(ve *entities.ValidationError, email string) {
	if email == "" {
		ve.Add("email", "email is required")
		return
	}
	if len(email) > maxEmailLen {
		ve.Add("email", fmt.Sprintf("email must be at most %d characters", maxEmailLen))
	}
	if _, err := mail.ParseAddress(email); err != nil {
		ve.Add("email", "email must be a valid email address")
	}
}
