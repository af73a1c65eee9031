// Package fault defines the business fault taxonomy shared by every
// service boundary. A Fault is the only error shape that crosses the wire;
// transport problems stay plain errors and are handled by the resilience
// layer instead.
package fault

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Stable fault codes, suitable for programmatic handling by callers.
const (
	CodeInvalidCustomer   = "INVALID_CUSTOMER"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodePaymentFailed     = "PAYMENT_FAILED"
	CodeProductNotFound   = "PRODUCT_NOT_FOUND"
	CodeOrderNotFound     = "ORDER_NOT_FOUND"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeUnauthorized      = "UNAUTHORIZED"
)

// Fault is a business fault. It crosses every service boundary uniformly
// as a ServiceFault element inside a fault envelope.
type Fault struct {
	Code      string
	Message   string
	Details   string
	Timestamp time.Time
}

func (f *Fault) Error() string {
	if f.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", f.Code, f.Message, f.Details)
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// New creates a fault with the given code, message, and details.
func New(code, message, details string) *Fault {
	return &Fault{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// InvalidCustomer reports a customer that does not exist or is not active.
func InvalidCustomer() *Fault {
	return New(CodeInvalidCustomer,
		"customer not found or inactive",
		"the specified customer does not exist or is blocked")
}

// InsufficientStock reports one or more reservation issues, joined into the
// fault details.
func InsufficientStock(issues []string) *Fault {
	return New(CodeInsufficientStock,
		"insufficient stock for one or more products",
		strings.Join(issues, "; "))
}

// PaymentFailed reports a rejected or errored payment.
func PaymentFailed(details string) *Fault {
	if details == "" {
		details = "the payment was rejected by the processor"
	}
	return New(CodePaymentFailed, "payment processing failed", details)
}

// ProductNotFound reports a missing product.
func ProductNotFound(productID uuid.UUID) *Fault {
	return New(CodeProductNotFound,
		"product not found",
		fmt.Sprintf("product with id %s was not found", productID))
}

// OrderNotFound reports a missing order.
func OrderNotFound(orderID uuid.UUID) *Fault {
	return New(CodeOrderNotFound,
		"order not found",
		fmt.Sprintf("order with id %s was not found", orderID))
}

// InvalidRequest reports a generic request problem with free-text detail.
func InvalidRequest(details string) *Fault {
	return New(CodeInvalidRequest, "invalid request", details)
}

// Unauthorized reports a missing or invalid API key.
func Unauthorized(details string) *Fault {
	return New(CodeUnauthorized, "invalid or missing api key", details)
}

// As unwraps err into a *Fault if it is one.
func As(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Is reports whether err is a fault with the given code.
func Is(err error, code string) bool {
	f, ok := As(err)
	return ok && f.Code == code
}
