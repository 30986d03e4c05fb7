// Package entities contains core business entities.
package entities

import "time"

// Project belongs to a team; its effective owner is the team's owner.
type Project struct {
	ID        int64
	Name      string
	TeamID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
