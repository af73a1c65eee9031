package contracts

import "github.com/google/uuid"

// NamespaceProcess is the composition service's short namespace.
const NamespaceProcess = "process"

// PlaceOrderItem is one requested line of a composed order.
type PlaceOrderItem struct {
	ProductID uuid.UUID `xml:"ProductId" validate:"required"`
	Quantity  int       `xml:"Quantity" validate:"gt=0"`
}

type PlaceOrderRequest struct {
	CustomerEmail string           `xml:"CustomerEmail" validate:"required,email"`
	Items         []PlaceOrderItem `xml:"Items>Item" validate:"required,min=1,dive"`
}

// PlaceOrderResponse carries the confirmed order on success.
type PlaceOrderResponse struct {
	Order   *Order `xml:"Order"`
	Success bool   `xml:"Success"`
	Message string `xml:"Message"`
}
