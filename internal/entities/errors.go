// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnauthenticated signals a missing, unknown or expired bearer token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidCredentials signals a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken signals a unique email conflict on registration.
	ErrEmailTaken = errors.New("email already taken")
	// ErrTokenNotFound signals an unknown token id.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTeamNotFound covers both a missing team and a team owned by another
	// user. The two cases are indistinguishable on purpose.
	ErrTeamNotFound = errors.New("team not found or no access")
	// ErrProjectNotFound covers a missing or foreign project.
	ErrProjectNotFound = errors.New("project not found or no access")
	// ErrTaskNotFound covers a missing or foreign task, including a task
	// reached through the wrong project id.
	ErrTaskNotFound = errors.New("task not found or no access")
)

// ValidationError carries the complete per-field violation list for a
// request. It is an expected control-flow outcome, not a fault.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty validation error ready for Add calls.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a message for a field.
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// Empty reports whether no violations were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Error renders a deterministic summary of the violated fields.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
