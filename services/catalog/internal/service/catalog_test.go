package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/contracts"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/fault"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/catalog/internal/domain"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/catalog/internal/repository"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

func (m *mockProductRepository) IncrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

func newTestService(repo *mockProductRepository) *CatalogService {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewCatalogService(repo, log)
	svc.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func sampleProduct(stock int) *domain.Product {
	return &domain.Product{
		ID:         uuid.New(),
		Name:       "Widget",
		PriceCents: 2599,
		Stock:      stock,
		IsActive:   true,
		CreatedAt:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateProduct_Success(t *testing.T) {
	repo := new(mockProductRepository)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

	resp, err := newTestService(repo).CreateProduct(ctx, &contracts.CreateProductRequest{
		Name:  "Widget",
		Price: 2599,
		Stock: 10,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEqual(t, uuid.Nil, resp.ProductID)

	created := repo.Calls[0].Arguments.Get(1).(*domain.Product)
	assert.True(t, created.IsActive)
	assert.Equal(t, int64(2599), created.PriceCents)
}

func TestCreateProduct_Validation(t *testing.T) {
	svc := newTestService(new(mockProductRepository))

	_, err := svc.CreateProduct(context.Background(), &contracts.CreateProductRequest{Price: 100, Stock: 1})
	assert.True(t, fault.Is(err, fault.CodeInvalidRequest))

	_, err = svc.CreateProduct(context.Background(), &contracts.CreateProductRequest{Name: "Widget", Price: -1})
	assert.True(t, fault.Is(err, fault.CodeInvalidRequest))

	_, err = svc.CreateProduct(context.Background(), &contracts.CreateProductRequest{Name: "Widget", Price: 100, Stock: -1})
	assert.True(t, fault.Is(err, fault.CodeInvalidRequest))
}

func TestGetProduct_NotFoundFault(t *testing.T) {
	repo := new(mockProductRepository)
	ctx := context.Background()
	id := uuid.New()

	repo.On("GetByID", ctx, id).Return(nil, repository.ErrNotFound)

	_, err := newTestService(repo).GetProduct(ctx, &contracts.GetProductRequest{ProductID: id})
	assert.True(t, fault.Is(err, fault.CodeProductNotFound))
}

func TestReserveInventory_AllLinesGranted(t *testing.T) {
	repo := new(mockProductRepository)
	ctx := context.Background()
	p1 := sampleProduct(10)
	p2 := sampleProduct(5)
	p2.Name = "Gadget"
	p2.PriceCents = 999

	repo.On("GetByID", ctx, p1.ID).Return(p1, nil)
	repo.On("GetByID", ctx, p2.ID).Return(p2, nil)
	repo.On("DecrementStock", ctx, p1.ID, 2).Return(nil)
	repo.On("DecrementStock", ctx, p2.ID, 1).Return(nil)

	resp, err := newTestService(repo).ReserveInventory(ctx, &contracts.ReserveInventoryRequest{
		Lines: []contracts.ReserveLine{
			{ProductID: p1.ID, Quantity: 2},
			{ProductID: p2.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Issues)
	require.Len(t, resp.PricedLines, 2)
	assert.Equal(t, contracts.Money(2599), resp.PricedLines[0].UnitPrice)
	assert.Equal(t, contracts.Money(999), resp.PricedLines[1].UnitPrice)
}

func TestReserveInventory_PartialFailureKeepsEarlierDecrements(t *testing.T) {
	repo := new(mockProductRepository)
	ctx := context.Background()
	granted := sampleProduct(10)
	short := sampleProduct(1)
	short.Name = "Gadget"
	missing := uuid.New()

	repo.On("GetByID", ctx, granted.ID).Return(granted, nil)
	repo.On("GetByID", ctx, short.ID).Return(short, nil)
	repo.On("GetByID", ctx, missing).Return(nil, repository.ErrNotFound)
	repo.On("DecrementStock", ctx, granted.ID, 3).Return(nil)
	repo.On("DecrementStock", ctx, short.ID, 5).Return(repository.ErrInsufficientStock)

	resp, err := newTestService(repo).ReserveInventory(ctx, &contracts.ReserveInventoryRequest{
		Lines: []contracts.ReserveLine{
			{ProductID: granted.ID, Quantity: 3},
			{ProductID: short.ID, Quantity: 5},
			{ProductID: missing, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	require.Len(t, resp.Issues, 2)
	assert.Contains(t, resp.Issues[0], "insufficient stock for Gadget")
	assert.Contains(t, resp.Issues[0], "requested 5, available 1")
	assert.Contains(t, resp.Issues[1], "not found")

	// The first line's decrement is kept even though later lines failed.
	require.Len(t, resp.PricedLines, 1)
	assert.Equal(t, granted.ID, resp.PricedLines[0].ProductID)
	repo.AssertCalled(t, "DecrementStock", ctx, granted.ID, 3)
}

func TestReserveInventory_InactiveProduct(t *testing.T) {
	repo := new(mockProductRepository)
	ctx := context.Background()
	inactive := sampleProduct(10)
	inactive.IsActive = false

	repo.On("GetByID", ctx, inactive.ID).Return(inactive, nil)

	resp, err := newTestService(repo).ReserveInventory(ctx, &contracts.ReserveInventoryRequest{
		Lines: []contracts.ReserveLine{{ProductID: inactive.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	require.Len(t, resp.Issues, 1)
	assert.Contains(t, resp.Issues[0], "inactive")
	repo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestReleaseInventory_SkipsUnknownProducts(t *testing.T) {
	repo := new(mockProductRepository)
	ctx := context.Background()
	known := uuid.New()
	unknown := uuid.New()

	repo.On("IncrementStock", ctx, known, 3).Return(nil)
	repo.On("IncrementStock", ctx, unknown, 2).Return(repository.ErrNotFound)

	resp, err := newTestService(repo).ReleaseInventory(ctx, &contracts.ReleaseInventoryRequest{
		Lines: []contracts.ReserveLine{
			{ProductID: known, Quantity: 3},
			{ProductID: unknown, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.ReleasedCount)
}
