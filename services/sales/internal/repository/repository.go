// Package repository defines the sales persistence contract.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/sales/internal/domain"
)

var (
	// ErrNotFound is returned when an order does not exist.
	ErrNotFound = errors.New("order not found")

	// ErrNotPending is returned when confirming an order that is not
	// pending anymore.
	ErrNotPending = errors.New("order is not pending")

	// ErrAlreadyCanceled is returned when canceling an order twice.
	ErrAlreadyCanceled = errors.New("order is already canceled")
)

// OrderRepository persists orders and their items.
type OrderRepository interface {
	// Create inserts the order and its items atomically.
	Create(ctx context.Context, o *domain.Order) error

	// GetByID retrieves an order with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)

	// Confirm moves a pending order to confirmed. ErrNotPending when the
	// order exists but is not pending.
	Confirm(ctx context.Context, id uuid.UUID) error

	// Cancel moves an order to canceled and records the reason.
	// ErrAlreadyCanceled when the order was canceled before.
	Cancel(ctx context.Context, id uuid.UUID, reason string) error
}
