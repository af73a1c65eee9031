package contracts

import (
	"time"

	"github.com/google/uuid"
)

// NamespaceSales is the sales service's short namespace.
const NamespaceSales = "sales"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderCanceled  OrderStatus = "Canceled"
)

// OrderItem is one line of a persisted order.
type OrderItem struct {
	ProductID uuid.UUID `xml:"ProductId"`
	Quantity  int       `xml:"Quantity"`
	UnitPrice Money     `xml:"UnitPrice"`
	Subtotal  Money     `xml:"Subtotal"`
}

// Order is the order record as it travels on the wire.
type Order struct {
	ID         uuid.UUID   `xml:"Id"`
	CustomerID uuid.UUID   `xml:"CustomerId"`
	Status     OrderStatus `xml:"Status"`
	Total      Money       `xml:"Total"`
	CreatedAt  time.Time   `xml:"CreatedAt"`
	Items      []OrderItem `xml:"Items>Item"`
}

// OrderItemInput is one line of an order being created, priced upstream.
type OrderItemInput struct {
	ProductID uuid.UUID `xml:"ProductId"`
	Quantity  int       `xml:"Quantity"`
	UnitPrice Money     `xml:"UnitPrice"`
}

type CreateOrderRequest struct {
	CustomerID uuid.UUID        `xml:"CustomerId"`
	Items      []OrderItemInput `xml:"Items>Item"`
}

type CreateOrderResponse struct {
	OrderID uuid.UUID `xml:"OrderId"`
	Success bool      `xml:"Success"`
	Message string    `xml:"Message"`
}

type ConfirmOrderRequest struct {
	OrderID uuid.UUID `xml:"OrderId"`
}

type ConfirmOrderResponse struct {
	Success bool   `xml:"Success"`
	Message string `xml:"Message"`
}

type CancelOrderRequest struct {
	OrderID uuid.UUID `xml:"OrderId"`
	Reason  string    `xml:"Reason"`
}

type CancelOrderResponse struct {
	Success bool   `xml:"Success"`
	Message string `xml:"Message"`
}

type GetOrderRequest struct {
	OrderID uuid.UUID `xml:"OrderId"`
}

type GetOrderResponse struct {
	Order   *Order `xml:"Order"`
	Success bool   `xml:"Success"`
}
