// Package domain holds the catalog service's stored entities.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Price is stored in cents; Stock is the
// on-hand quantity available for reservation.
type Product struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	Stock      int
	IsActive   bool
	CreatedAt  time.Time
}
