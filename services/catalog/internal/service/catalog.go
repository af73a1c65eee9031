// Package service implements the catalog operations exposed over the wire.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/contracts"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/fault"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/logger"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/catalog/internal/domain"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/catalog/internal/repository"
)

// CatalogService implements the catalog operations.
type CatalogService struct {
	repo repository.ProductRepository
	log  *slog.Logger
	now  func() time.Time
}

func NewCatalogService(repo repository.ProductRepository, log *slog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log, now: time.Now}
}

// CreateProduct registers a new active product.
func (s *CatalogService) CreateProduct(ctx context.Context, req *contracts.CreateProductRequest) (*contracts.CreateProductResponse, error) {
	log := logger.WithContext(ctx, s.log)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fault.InvalidRequest("name is required")
	}
	if req.Price < 0 {
		return nil, fault.InvalidRequest("price must not be negative")
	}
	if req.Stock < 0 {
		return nil, fault.InvalidRequest("stock must not be negative")
	}

	p := &domain.Product{
		ID:         uuid.New(),
		Name:       name,
		PriceCents: int64(req.Price),
		Stock:      req.Stock,
		IsActive:   true,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	log.Info("product created",
		slog.String("product_id", p.ID.String()),
		slog.String("name", p.Name),
	)

	return &contracts.CreateProductResponse{
		ProductID: p.ID,
		Success:   true,
		Message:   "product created",
	}, nil
}

// GetProduct looks a product up by id. A miss is a ProductNotFound fault.
func (s *CatalogService) GetProduct(ctx context.Context, req *contracts.GetProductRequest) (*contracts.GetProductResponse, error) {
	p, err := s.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fault.ProductNotFound(req.ProductID)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &contracts.GetProductResponse{
		Product: toWire(p),
		Success: true,
	}, nil
}

// ReserveInventory walks the requested lines in order and decrements stock
// per line. A line that cannot be reserved adds an issue and moves on;
// decrements already applied for earlier lines are kept. Success means every
// line was reserved, and PricedLines carries the unit price captured for
// each granted line.
func (s *CatalogService) ReserveInventory(ctx context.Context, req *contracts.ReserveInventoryRequest) (*contracts.ReserveInventoryResponse, error) {
	log := logger.WithContext(ctx, s.log)

	resp := &contracts.ReserveInventoryResponse{}
	var issues []string

	for _, line := range req.Lines {
		p, err := s.repo.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				issues = append(issues, fmt.Sprintf("product %s not found", line.ProductID))
				continue
			}
			return nil, fmt.Errorf("reserve inventory: %w", err)
		}

		if !p.IsActive {
			issues = append(issues, fmt.Sprintf("product %s is inactive", p.Name))
			continue
		}

		if line.Quantity <= 0 {
			issues = append(issues, fmt.Sprintf("invalid quantity %d for %s", line.Quantity, p.Name))
			continue
		}

		if err := s.repo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				issues = append(issues, fmt.Sprintf(
					"insufficient stock for %s: requested %d, available %d",
					p.Name, line.Quantity, p.Stock))
				continue
			}
			return nil, fmt.Errorf("reserve inventory: %w", err)
		}

		resp.PricedLines = append(resp.PricedLines, contracts.PricedLine{
			ProductID: p.ID,
			Quantity:  line.Quantity,
			UnitPrice: contracts.Money(p.PriceCents),
		})

		log.Info("stock reserved",
			slog.String("product_id", p.ID.String()),
			slog.Int("quantity", line.Quantity),
		)
	}

	resp.Success = len(issues) == 0
	resp.Issues = issues

	if !resp.Success {
		log.Warn("reservation incomplete", slog.String("issues", strings.Join(issues, "; ")))
	}

	return resp, nil
}

// ReleaseInventory returns previously reserved units to stock. Unknown
// products are skipped; ReleasedCount sums only the units actually returned.
func (s *CatalogService) ReleaseInventory(ctx context.Context, req *contracts.ReleaseInventoryRequest) (*contracts.ReleaseInventoryResponse, error) {
	log := logger.WithContext(ctx, s.log)

	released := 0
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			continue
		}
		if err := s.repo.IncrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				log.Warn("release skipped unknown product", slog.String("product_id", line.ProductID.String()))
				continue
			}
			return nil, fmt.Errorf("release inventory: %w", err)
		}
		released += line.Quantity
	}

	log.Info("stock released", slog.Int("released_count", released))

	return &contracts.ReleaseInventoryResponse{
		ReleasedCount: released,
		Success:       true,
	}, nil
}

// toWire converts the stored product to its wire record.
func toWire(p *domain.Product) *contracts.Product {
	return &contracts.Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    contracts.Money(p.PriceCents),
		Stock:    p.Stock,
		IsActive: p.IsActive,
	}
}
