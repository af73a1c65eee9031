// Package domain holds the sales service's stored entities.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order lifecycle states as stored.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
)

// OrderItem is one stored order line. UnitPrice and Subtotal are in cents.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice int64
	Subtotal  int64
}

// Order is a stored order with its items. TotalCents is the sum of the
// item subtotals, fixed at creation time.
type Order struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	Status         string
	TotalCents     int64
	CanceledReason string
	CreatedAt      time.Time
	Items          []OrderItem
}
