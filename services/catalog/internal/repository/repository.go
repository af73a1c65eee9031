// Package repository defines the catalog persistence contract.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/catalog/internal/domain"
)

var (
	// ErrNotFound is returned when a product does not exist.
	ErrNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when a decrement would take stock
	// below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository persists products and adjusts their stock.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// DecrementStock atomically subtracts qty from the product's stock.
	// It fails with ErrInsufficientStock when fewer than qty units remain.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error

	// IncrementStock adds qty back to the product's stock.
	IncrementStock(ctx context.Context, id uuid.UUID, qty int) error
}
