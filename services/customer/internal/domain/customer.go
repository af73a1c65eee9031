// Package domain holds the customer service's persisted model.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer status constants as stored.
const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// Customer is a registered customer account.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Status    string
	CreatedAt time.Time
}

// IsActive reports whether the account may place orders.
func (c *Customer) IsActive() bool {
	return c.Status == StatusActive
}

// Score rates the account by age: established accounts (older than 30 days)
// score 100, recent ones 50.
func (c *Customer) Score(now time.Time) int {
	if c.CreatedAt.Before(now.AddDate(0, 0, -30)) {
		return 100
	}
	return 50
}
