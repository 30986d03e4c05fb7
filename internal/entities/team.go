// Package entities contains core business entities.
package entities

import "time"

// Team groups projects under a single owning user. The owner is set at
// creation and never changes.
type Team struct {
	ID        int64
	Name      string
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
