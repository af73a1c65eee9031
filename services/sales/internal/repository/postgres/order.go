package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/database"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/sales/internal/domain"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/sales/internal/repository"
)

// OrderRepository implements repository.OrderRepository using PostgreSQL.
type OrderRepository struct {
	pool database.DBTX
}

func NewOrderRepository(pool database.DBTX) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order and its items atomically within a transaction.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (id, customer_id, status, total_cents, canceled_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = tx.Exec(ctx, orderQuery,
		o.ID, o.CustomerID, o.Status, o.TotalCents, o.CanceledReason, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price_cents, subtotal_cents)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, item := range o.Items {
		_, err = tx.Exec(ctx, itemQuery,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves an order with its items.
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	orderQuery := `
		SELECT id, customer_id, status, total_cents, canceled_reason, created_at
		FROM orders
		WHERE id = $1`

	var o domain.Order
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&o.ID, &o.CustomerID, &o.Status, &o.TotalCents, &o.CanceledReason, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select order: %w", err)
	}

	itemQuery := `
		SELECT id, order_id, product_id, quantity, unit_price_cents, subtotal_cents
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, itemQuery, id)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return &o, nil
}

// Confirm moves a pending order to confirmed. The status guard keeps the
// transition idempotent under concurrent confirms.
func (r *OrderRepository) Confirm(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE orders
		SET status = $2
		WHERE id = $1 AND status = $3`

	tag, err := r.pool.Exec(ctx, query, id, domain.StatusConfirmed, domain.StatusPending)
	if err != nil {
		return fmt.Errorf("confirm order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id, repository.ErrNotPending)
	}

	return nil
}

// Cancel moves an order to canceled and records the reason.
func (r *OrderRepository) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	query := `
		UPDATE orders
		SET status = $2, canceled_reason = $3
		WHERE id = $1 AND status <> $2`

	tag, err := r.pool.Exec(ctx, query, id, domain.StatusCanceled, reason)
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id, repository.ErrAlreadyCanceled)
	}

	return nil
}

// classifyMiss distinguishes a missing order from a guard rejection after a
// zero-row update.
func (r *OrderRepository) classifyMiss(ctx context.Context, id uuid.UUID, rejected error) error {
	var status string
	err := r.pool.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("check order status: %w", err)
	}
	return rejected
}
