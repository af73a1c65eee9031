package clients

import (
	"context"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/contracts"
)

// SalesClient is the typed proxy for the sales service.
type SalesClient struct {
	base
}

func NewSalesClient(doer Doer, apiKey, endpoint string) *SalesClient {
	return &SalesClient{base: newBase(doer, apiKey, endpoint, contracts.NamespaceSales, "Sales")}
}

func (c *SalesClient) CreateOrder(ctx context.Context, req *contracts.CreateOrderRequest) (*contracts.CreateOrderResponse, error) {
	var out contracts.CreateOrderResponse
	if err := c.call(ctx, "CreateOrder", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SalesClient) ConfirmOrder(ctx context.Context, req *contracts.ConfirmOrderRequest) (*contracts.ConfirmOrderResponse, error) {
	var out contracts.ConfirmOrderResponse
	if err := c.call(ctx, "ConfirmOrder", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SalesClient) CancelOrder(ctx context.Context, req *contracts.CancelOrderRequest) (*contracts.CancelOrderResponse, error) {
	var out contracts.CancelOrderResponse
	if err := c.call(ctx, "CancelOrder", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SalesClient) GetOrder(ctx context.Context, req *contracts.GetOrderRequest) (*contracts.GetOrderResponse, error) {
	var out contracts.GetOrderResponse
	if err := c.call(ctx, "GetOrder", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
