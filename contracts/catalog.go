package contracts

import "github.com/google/uuid"

// NamespaceCatalog is the catalog service's short namespace.
const NamespaceCatalog = "catalog"

// Product is the product record as it travels on the wire.
type Product struct {
	ID       uuid.UUID `xml:"Id"`
	Name     string    `xml:"Name"`
	Price    Money     `xml:"Price"`
	Stock    int       `xml:"Stock"`
	IsActive bool      `xml:"IsActive"`
}

type CreateProductRequest struct {
	Name  string `xml:"Name"`
	Price Money  `xml:"Price"`
	Stock int    `xml:"Stock"`
}

type CreateProductResponse struct {
	ProductID uuid.UUID `xml:"ProductId"`
	Success   bool      `xml:"Success"`
	Message   string    `xml:"Message"`
}

type GetProductRequest struct {
	ProductID uuid.UUID `xml:"ProductId"`
}

type GetProductResponse struct {
	Product *Product `xml:"Product"`
	Success bool     `xml:"Success"`
}

// ReserveLine is one requested reservation: a product and a quantity.
type ReserveLine struct {
	ProductID uuid.UUID `xml:"ProductId"`
	Quantity  int       `xml:"Quantity"`
}

// PricedLine is one granted reservation with the unit price captured at
// reservation time.
type PricedLine struct {
	ProductID uuid.UUID `xml:"ProductId"`
	Quantity  int       `xml:"Quantity"`
	UnitPrice Money     `xml:"UnitPrice"`
}

type ReserveInventoryRequest struct {
	Lines []ReserveLine `xml:"Lines>Line"`
}

// ReserveInventoryResponse carries the priced lines on full success, or the
// per-line issues when any line could not be reserved.
type ReserveInventoryResponse struct {
	Success     bool         `xml:"Success"`
	PricedLines []PricedLine `xml:"PricedLines>Line"`
	Issues      []string     `xml:"Issues>Issue"`
}

type ReleaseInventoryRequest struct {
	Lines []ReserveLine `xml:"Lines>Line"`
}

type ReleaseInventoryResponse struct {
	ReleasedCount int  `xml:"ReleasedCount"`
	Success       bool `xml:"Success"`
}
