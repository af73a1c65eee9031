package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/customer/internal/domain"
)

// Sentinel errors the service layer maps to faults.
var (
	ErrNotFound       = errors.New("customer not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// CustomerRepository defines customer persistence operations.
type CustomerRepository interface {
	// Create inserts a new customer. Returns ErrDuplicateEmail when the
	// email is already taken.
	Create(ctx context.Context, c *domain.Customer) error

	// GetByID retrieves a customer by id. Returns ErrNotFound on a miss.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)

	// GetByEmail retrieves a customer by email. Returns ErrNotFound on a miss.
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
}
