package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/database"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/catalog/internal/domain"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/catalog/internal/repository"
)

// ProductRepository implements repository.ProductRepository using
// PostgreSQL. Stock adjustments are single conditional statements so
// concurrent reservations never oversell.
type ProductRepository struct {
	pool database.DBTX
}

func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (id, name, price_cents, stock, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, p.ID, p.Name, p.PriceCents, p.Stock, p.IsActive, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by id.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
		SELECT id, name, price_cents, stock, is_active, created_at
		FROM products
		WHERE id = $1`

	var p domain.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.PriceCents, &p.Stock, &p.IsActive, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select product: %w", err)
	}

	return &p, nil
}

// DecrementStock subtracts qty only when enough units remain. Zero rows
// affected means the guard rejected the decrement.
func (r *ProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	query := `
		UPDATE products
		SET stock = stock - $2
		WHERE id = $1 AND stock >= $2`

	tag, err := r.pool.Exec(ctx, query, id, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// IncrementStock adds qty back. Unknown products are reported so the
// caller can decide whether to skip them.
func (r *ProductRepository) IncrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	query := `
		UPDATE products
		SET stock = stock + $2
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, qty)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}
