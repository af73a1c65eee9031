package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/database"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/sales/internal/domain"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/sales/internal/repository"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	return mock
}

var now = time.Date(2026, 7, 10, 9, 30, 0, 0, time.UTC)

func sampleOrder() *domain.Order {
	orderID := uuid.New()
	return &domain.Order{
		ID:         orderID,
		CustomerID: uuid.New(),
		Status:     domain.StatusPending,
		TotalCents: 5198,
		CreatedAt:  now,
		Items: []domain.OrderItem{
			{
				ID:        uuid.New(),
				OrderID:   orderID,
				ProductID: uuid.New(),
				Quantity:  2,
				UnitPrice: 2599,
				Subtotal:  5198,
			},
		},
	}
}

func TestOrderCreateCommitsOrderAndItems(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewOrderRepository(mock)
	o := sampleOrder()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(o.ID, o.CustomerID, o.Status, o.TotalCents, o.CanceledReason, o.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	item := o.Items[0]
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), o)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreateRollsBackOnItemFailure(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewOrderRepository(mock)
	o := sampleOrder()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(o.ID, o.CustomerID, o.Status, o.TotalCents, o.CanceledReason, o.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	item := o.Items[0]
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), o)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGetByIDWithItems(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewOrderRepository(mock)
	o := sampleOrder()
	item := o.Items[0]

	mock.ExpectQuery("SELECT .+ FROM orders").
		WithArgs(o.ID).
		WillReturnRows(pgxmock.NewRows(
			[]string{"id", "customer_id", "status", "total_cents", "canceled_reason", "created_at"}).
			AddRow(o.ID, o.CustomerID, o.Status, o.TotalCents, o.CanceledReason, o.CreatedAt))
	mock.ExpectQuery("SELECT .+ FROM order_items").
		WithArgs(o.ID).
		WillReturnRows(pgxmock.NewRows(
			[]string{"id", "order_id", "product_id", "quantity", "unit_price_cents", "subtotal_cents"}).
			AddRow(item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal))

	got, err := repo.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewOrderRepository(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM orders").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderConfirm(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewOrderRepository(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE orders").
		WithArgs(id, domain.StatusConfirmed, domain.StatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Confirm(context.Background(), id)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderConfirmNotPending(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewOrderRepository(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE orders").
		WithArgs(id, domain.StatusConfirmed, domain.StatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT status FROM orders").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(domain.StatusConfirmed))

	err := repo.Confirm(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderConfirmNotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewOrderRepository(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE orders").
		WithArgs(id, domain.StatusConfirmed, domain.StatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT status FROM orders").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	err := repo.Confirm(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCancelRecordsReason(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewOrderRepository(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE orders").
		WithArgs(id, domain.StatusCanceled, "payment failed").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Cancel(context.Background(), id, "payment failed")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCancelTwice(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewOrderRepository(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE orders").
		WithArgs(id, domain.StatusCanceled, "changed my mind").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT status FROM orders").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(domain.StatusCanceled))

	err := repo.Cancel(context.Background(), id, "changed my mind")
	assert.ErrorIs(t, err, repository.ErrAlreadyCanceled)
	assert.NoError(t, mock.ExpectationsWereMet())
}
