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
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/catalog/internal/domain"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/catalog/internal/repository"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	return mock
}

var now = time.Date(2026, 7, 10, 9, 30, 0, 0, time.UTC)

var productColumns = []string{"id", "name", "price_cents", "stock", "is_active", "created_at"}

func sampleProduct() *domain.Product {
	return &domain.Product{
		ID:         uuid.New(),
		Name:       "Widget",
		PriceCents: 2599,
		Stock:      10,
		IsActive:   true,
		CreatedAt:  now,
	}
}

func TestProductCreate(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)
	p := sampleProduct()

	mock.ExpectExec("INSERT INTO products").
		WithArgs(p.ID, p.Name, p.PriceCents, p.Stock, p.IsActive, p.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetByID(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)
	p := sampleProduct()

	mock.ExpectQuery("SELECT .+ FROM products").
		WithArgs(p.ID).
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow(p.ID, p.Name, p.PriceCents, p.Stock, p.IsActive, p.CreatedAt))

	got, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM products").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStock(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE products").
		WithArgs(id, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.DecrementStock(context.Background(), id, 3)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStockInsufficient(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)
	id := uuid.New()

	// The conditional guard matches no rows when stock would go negative.
	mock.ExpectExec("UPDATE products").
		WithArgs(id, 100).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.DecrementStock(context.Background(), id, 100)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementStock(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE products").
		WithArgs(id, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.IncrementStock(context.Background(), id, 3)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementStockUnknownProduct(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE products").
		WithArgs(id, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.IncrementStock(context.Background(), id, 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
