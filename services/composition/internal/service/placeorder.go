// Package service orchestrates the place-order saga across the customer,
// catalog, and sales services.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/contracts"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/fault"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/logger"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/validator"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/composition/internal/event"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/composition/internal/payment"
)

// CustomerGateway is the slice of the customer service the saga needs.
type CustomerGateway interface {
	GetCustomerByEmail(ctx context.Context, req *contracts.GetCustomerByEmailRequest) (*contracts.GetCustomerByEmailResponse, error)
}

// CatalogGateway is the slice of the catalog service the saga needs.
type CatalogGateway interface {
	ReserveInventory(ctx context.Context, req *contracts.ReserveInventoryRequest) (*contracts.ReserveInventoryResponse, error)
	ReleaseInventory(ctx context.Context, req *contracts.ReleaseInventoryRequest) (*contracts.ReleaseInventoryResponse, error)
}

// SalesGateway is the slice of the sales service the saga needs.
type SalesGateway interface {
	CreateOrder(ctx context.Context, req *contracts.CreateOrderRequest) (*contracts.CreateOrderResponse, error)
	ConfirmOrder(ctx context.Context, req *contracts.ConfirmOrderRequest) (*contracts.ConfirmOrderResponse, error)
	CancelOrder(ctx context.Context, req *contracts.CancelOrderRequest) (*contracts.CancelOrderResponse, error)
	GetOrder(ctx context.Context, req *contracts.GetOrderRequest) (*contracts.GetOrderResponse, error)
}

// CompositionService runs the place-order saga.
type CompositionService struct {
	customers CustomerGateway
	catalog   CatalogGateway
	sales     SalesGateway
	payments  payment.Processor
	events    *event.Publisher
	log       *slog.Logger
}

func NewCompositionService(
	customers CustomerGateway,
	catalog CatalogGateway,
	sales SalesGateway,
	payments payment.Processor,
	events *event.Publisher,
	log *slog.Logger,
) *CompositionService {
	return &CompositionService{
		customers: customers,
		catalog:   catalog,
		sales:     sales,
		payments:  payments,
		events:    events,
		log:       log,
	}
}

// PlaceOrder runs the saga: look the customer up, reserve stock, create the
// order, charge the payment, confirm, and fetch the confirmed order. Every
// failure after a successful reservation compensates by releasing the
// reserved lines and, once an order exists, canceling it with the failure
// reason. Compensation is best-effort and never overrides the primary
// failure.
func (s *CompositionService) PlaceOrder(ctx context.Context, req *contracts.PlaceOrderRequest) (*contracts.PlaceOrderResponse, error) {
	log := logger.WithContext(ctx, s.log).With(slog.String("customer_email", req.CustomerEmail))
	log.Info("place order started", slog.Int("items", len(req.Items)))

	if err := validator.Validate(req); err != nil {
		return nil, fault.InvalidRequest(err.Error())
	}

	// 1. Customer lookup. A miss is in-band, a blocked customer is a plain
	// status check; both end the saga before any side effect.
	customerResp, err := s.customers.GetCustomerByEmail(ctx, &contracts.GetCustomerByEmailRequest{
		Email: req.CustomerEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("lookup customer: %w", err)
	}
	if !customerResp.Success || customerResp.Customer == nil {
		log.Warn("customer not found")
		s.emitFailed(ctx, uuid.Nil, req.CustomerEmail, fault.CodeInvalidCustomer)
		return nil, fault.InvalidCustomer()
	}
	customer := customerResp.Customer
	if customer.Status != contracts.CustomerActive {
		log.Warn("customer not active", slog.String("status", string(customer.Status)))
		s.emitFailed(ctx, uuid.Nil, req.CustomerEmail, fault.CodeInvalidCustomer)
		return nil, fault.InvalidCustomer()
	}

	// 2. Reserve stock. The catalog reserves line by line; a partial
	// failure leaves earlier lines decremented, a known limitation of the
	// remote operation that the orchestrator does not repair.
	lines := make([]contracts.ReserveLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, contracts.ReserveLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	reserveResp, err := s.catalog.ReserveInventory(ctx, &contracts.ReserveInventoryRequest{Lines: lines})
	if err != nil {
		return nil, fmt.Errorf("reserve inventory: %w", err)
	}
	if !reserveResp.Success {
		log.Warn("reservation failed", slog.Int("issues", len(reserveResp.Issues)))
		s.emitFailed(ctx, uuid.Nil, req.CustomerEmail, fault.CodeInsufficientStock)
		return nil, fault.InsufficientStock(reserveResp.Issues)
	}

	// 3. Create the order from the priced lines.
	orderItems := make([]contracts.OrderItemInput, 0, len(reserveResp.PricedLines))
	var total contracts.Money
	for _, line := range reserveResp.PricedLines {
		orderItems = append(orderItems, contracts.OrderItemInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
		total += line.UnitPrice.Mul(line.Quantity)
	}

	createResp, err := s.sales.CreateOrder(ctx, &contracts.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      orderItems,
	})
	if err != nil {
		// No order to cancel yet; give the stock back and surface the
		// failure as-is.
		s.releaseReserved(ctx, reserveResp.PricedLines, log)
		s.emitFailed(ctx, uuid.Nil, req.CustomerEmail, fault.CodePaymentFailed)
		return nil, fmt.Errorf("create order: %w", err)
	}
	orderID := createResp.OrderID
	log = log.With(slog.String("order_id", orderID.String()))

	// 4-6. Charge, confirm, fetch. Any failure from here on compensates
	// fully and surfaces as a payment fault.
	order, err := s.completeOrder(ctx, orderID, total, log)
	if err != nil {
		s.compensate(ctx, orderID, reserveResp.PricedLines, err, log)
		s.emitFailed(ctx, orderID, req.CustomerEmail, fault.CodePaymentFailed)
		if fault.Is(err, fault.CodePaymentFailed) {
			return nil, err
		}
		return nil, fault.PaymentFailed(err.Error())
	}

	log.Info("place order completed", slog.String("total", total.String()))
	if s.events != nil {
		s.events.OrderPlaced(ctx, orderID, req.CustomerEmail, int64(order.Total))
	}

	return &contracts.PlaceOrderResponse{
		Order:   order,
		Success: true,
		Message: "order placed",
	}, nil
}

// completeOrder runs the steps that follow order creation: payment,
// confirmation, and the final fetch.
func (s *CompositionService) completeOrder(ctx context.Context, orderID uuid.UUID, total contracts.Money, log *slog.Logger) (*contracts.Order, error) {
	approved, err := s.payments.ProcessPayment(ctx, orderID, total)
	if err != nil {
		return nil, fmt.Errorf("process payment: %w", err)
	}
	if !approved {
		log.Warn("payment declined")
		return nil, fault.PaymentFailed("")
	}

	if _, err := s.sales.ConfirmOrder(ctx, &contracts.ConfirmOrderRequest{OrderID: orderID}); err != nil {
		return nil, fmt.Errorf("confirm order: %w", err)
	}

	orderResp, err := s.sales.GetOrder(ctx, &contracts.GetOrderRequest{OrderID: orderID})
	if err != nil {
		return nil, fmt.Errorf("fetch confirmed order: %w", err)
	}

	return orderResp.Order, nil
}

// compensate releases the reserved lines and cancels the order, logging
// failures instead of returning them.
func (s *CompositionService) compensate(ctx context.Context, orderID uuid.UUID, reserved []contracts.PricedLine, cause error, log *slog.Logger) {
	log.Warn("compensating failed order", slog.String("cause", cause.Error()))

	s.releaseReserved(ctx, reserved, log)

	reason := "payment failed"
	if f, ok := fault.As(cause); ok && f.Details != "" {
		reason = f.Details
	}
	if _, err := s.sales.CancelOrder(ctx, &contracts.CancelOrderRequest{
		OrderID: orderID,
		Reason:  reason,
	}); err != nil {
		log.Error("compensation: cancel order failed", slog.String("error", err.Error()))
	}
}

// releaseReserved gives granted lines back to the catalog. Safe on an empty
// slice.
func (s *CompositionService) releaseReserved(ctx context.Context, reserved []contracts.PricedLine, log *slog.Logger) {
	if len(reserved) == 0 {
		return
	}

	lines := make([]contracts.ReserveLine, 0, len(reserved))
	for _, line := range reserved {
		lines = append(lines, contracts.ReserveLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	if _, err := s.catalog.ReleaseInventory(ctx, &contracts.ReleaseInventoryRequest{Lines: lines}); err != nil {
		log.Error("compensation: release inventory failed", slog.String("error", err.Error()))
	}
}

func (s *CompositionService) emitFailed(ctx context.Context, orderID uuid.UUID, email, code string) {
	if s.events != nil {
		s.events.OrderFailed(ctx, orderID, email, code)
	}
}
