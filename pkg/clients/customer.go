package clients

import (
	"context"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/contracts"
)

// CustomerClient is the typed proxy for the customer service.
type CustomerClient struct {
	base
}

func NewCustomerClient(doer Doer, apiKey, endpoint string) *CustomerClient {
	return &CustomerClient{base: newBase(doer, apiKey, endpoint, contracts.NamespaceCustomers, "Customer")}
}

func (c *CustomerClient) CreateCustomer(ctx context.Context, req *contracts.CreateCustomerRequest) (*contracts.CreateCustomerResponse, error) {
	var out contracts.CreateCustomerResponse
	if err := c.call(ctx, "CreateCustomer", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CustomerClient) GetCustomer(ctx context.Context, req *contracts.GetCustomerRequest) (*contracts.GetCustomerResponse, error) {
	var out contracts.GetCustomerResponse
	if err := c.call(ctx, "GetCustomer", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CustomerClient) GetCustomerByEmail(ctx context.Context, req *contracts.GetCustomerByEmailRequest) (*contracts.GetCustomerByEmailResponse, error) {
	var out contracts.GetCustomerByEmailResponse
	if err := c.call(ctx, "GetCustomerByEmail", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CustomerClient) GetCustomerStatus(ctx context.Context, req *contracts.GetCustomerStatusRequest) (*contracts.GetCustomerStatusResponse, error) {
	var out contracts.GetCustomerStatusResponse
	if err := c.call(ctx, "GetCustomerStatus", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
