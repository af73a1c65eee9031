package clients

import (
	"context"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/contracts"
)

// CatalogClient is the typed proxy for the catalog service.
type CatalogClient struct {
	base
}

func NewCatalogClient(doer Doer, apiKey, endpoint string) *CatalogClient {
	return &CatalogClient{base: newBase(doer, apiKey, endpoint, contracts.NamespaceCatalog, "Catalog")}
}

func (c *CatalogClient) CreateProduct(ctx context.Context, req *contracts.CreateProductRequest) (*contracts.CreateProductResponse, error) {
	var out contracts.CreateProductResponse
	if err := c.call(ctx, "CreateProduct", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CatalogClient) GetProduct(ctx context.Context, req *contracts.GetProductRequest) (*contracts.GetProductResponse, error) {
	var out contracts.GetProductResponse
	if err := c.call(ctx, "GetProduct", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CatalogClient) ReserveInventory(ctx context.Context, req *contracts.ReserveInventoryRequest) (*contracts.ReserveInventoryResponse, error) {
	var out contracts.ReserveInventoryResponse
	if err := c.call(ctx, "ReserveInventory", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CatalogClient) ReleaseInventory(ctx context.Context, req *contracts.ReleaseInventoryRequest) (*contracts.ReleaseInventoryResponse, error) {
	var out contracts.ReleaseInventoryResponse
	if err := c.call(ctx, "ReleaseInventory", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
