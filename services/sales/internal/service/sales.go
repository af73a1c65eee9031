// Package service implements the sales operations exposed over the wire.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/contracts"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/fault"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/logger"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/sales/internal/domain"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/sales/internal/repository"
)

// SalesService implements the order lifecycle operations.
type SalesService struct {
	repo repository.OrderRepository
	log  *slog.Logger
	now  func() time.Time
}

func NewSalesService(repo repository.OrderRepository, log *slog.Logger) *SalesService {
	return &SalesService{repo: repo, log: log, now: time.Now}
}

// CreateOrder persists a pending order. Lines arrive already priced; the
// order total is the sum of the line subtotals and never changes afterwards.
func (s *SalesService) CreateOrder(ctx context.Context, req *contracts.CreateOrderRequest) (*contracts.CreateOrderResponse, error) {
	log := logger.WithContext(ctx, s.log)

	if req.CustomerID == uuid.Nil {
		return nil, fault.InvalidRequest("customer id is required")
	}
	if len(req.Items) == 0 {
		return nil, fault.InvalidRequest("order must have at least one item")
	}

	orderID := uuid.New()
	var total int64
	items := make([]domain.OrderItem, 0, len(req.Items))

	for _, in := range req.Items {
		if in.Quantity <= 0 {
			return nil, fault.InvalidRequest(fmt.Sprintf("invalid quantity %d for product %s", in.Quantity, in.ProductID))
		}
		subtotal := in.UnitPrice.Mul(in.Quantity)
		items = append(items, domain.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitPrice: int64(in.UnitPrice),
			Subtotal:  int64(subtotal),
		})
		total += int64(subtotal)
	}

	o := &domain.Order{
		ID:         orderID,
		CustomerID: req.CustomerID,
		Status:     domain.StatusPending,
		TotalCents: total,
		CreatedAt:  s.now().UTC(),
		Items:      items,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	log.Info("order created",
		slog.String("order_id", o.ID.String()),
		slog.String("customer_id", o.CustomerID.String()),
		slog.String("total", contracts.Money(total).String()),
	)

	return &contracts.CreateOrderResponse{
		OrderID: o.ID,
		Success: true,
		Message: "order created",
	}, nil
}

// ConfirmOrder moves a pending order to confirmed.
func (s *SalesService) ConfirmOrder(ctx context.Context, req *contracts.ConfirmOrderRequest) (*contracts.ConfirmOrderResponse, error) {
	log := logger.WithContext(ctx, s.log)

	if err := s.repo.Confirm(ctx, req.OrderID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fault.OrderNotFound(req.OrderID)
		case errors.Is(err, repository.ErrNotPending):
			return nil, fault.InvalidRequest("order is not pending")
		default:
			return nil, fmt.Errorf("confirm order: %w", err)
		}
	}

	log.Info("order confirmed", slog.String("order_id", req.OrderID.String()))

	return &contracts.ConfirmOrderResponse{
		Success: true,
		Message: "order confirmed",
	}, nil
}

// CancelOrder moves an order to canceled and records the reason. Canceling
// twice is rejected; canceling a confirmed order is allowed.
func (s *SalesService) CancelOrder(ctx context.Context, req *contracts.CancelOrderRequest) (*contracts.CancelOrderResponse, error) {
	log := logger.WithContext(ctx, s.log)

	if err := s.repo.Cancel(ctx, req.OrderID, req.Reason); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fault.OrderNotFound(req.OrderID)
		case errors.Is(err, repository.ErrAlreadyCanceled):
			return nil, fault.InvalidRequest("order is already canceled")
		default:
			return nil, fmt.Errorf("cancel order: %w", err)
		}
	}

	log.Info("order canceled",
		slog.String("order_id", req.OrderID.String()),
		slog.String("reason", req.Reason),
	)

	return &contracts.CancelOrderResponse{
		Success: true,
		Message: "order canceled",
	}, nil
}

// GetOrder retrieves an order with its items. A miss is an OrderNotFound
// fault.
func (s *SalesService) GetOrder(ctx context.Context, req *contracts.GetOrderRequest) (*contracts.GetOrderResponse, error) {
	o, err := s.repo.GetByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fault.OrderNotFound(req.OrderID)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	return &contracts.GetOrderResponse{
		Order:   toWire(o),
		Success: true,
	}, nil
}

// toWire converts the stored order to its wire record.
func toWire(o *domain.Order) *contracts.Order {
	items := make([]contracts.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, contracts.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: contracts.Money(item.UnitPrice),
			Subtotal:  contracts.Money(item.Subtotal),
		})
	}

	status := contracts.OrderPending
	switch o.Status {
	case domain.StatusConfirmed:
		status = contracts.OrderConfirmed
	case domain.StatusCanceled:
		status = contracts.OrderCanceled
	}

	return &contracts.Order{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Status:     status,
		Total:      contracts.Money(o.TotalCents),
		CreatedAt:  o.CreatedAt,
		Items:      items,
	}
}
