// Package service implements the customer operations exposed over the wire.
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
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/customer/internal/domain"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/customer/internal/repository"
)

// CustomerService implements the customer operations.
type CustomerService struct {
	repo repository.CustomerRepository
	log  *slog.Logger
	now  func() time.Time
}

func NewCustomerService(repo repository.CustomerRepository, log *slog.Logger) *CustomerService {
	return &CustomerService{repo: repo, log: log, now: time.Now}
}

// CreateCustomer registers a new customer as Active. Registering an email
// that already exists is not an error: the existing account is returned.
func (s *CustomerService) CreateCustomer(ctx context.Context, req *contracts.CreateCustomerRequest) (*contracts.CreateCustomerResponse, error) {
	log := logger.WithContext(ctx, s.log)

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return nil, fault.InvalidRequest("name is required")
	}
	if email == "" {
		return nil, fault.InvalidRequest("email is required")
	}

	if existing, err := s.repo.GetByEmail(ctx, email); err == nil {
		log.Info("customer already registered, returning existing",
			slog.String("email", email),
			slog.String("customer_id", existing.ID.String()),
		)
		return &contracts.CreateCustomerResponse{
			CustomerID: existing.ID,
			Success:    true,
			Message:    "customer already registered",
			Customer:   toWire(existing),
		}, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup customer by email: %w", err)
	}

	c := &domain.Customer{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Status:    domain.StatusActive,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		// A concurrent registration can win the unique index race.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			existing, lookupErr := s.repo.GetByEmail(ctx, email)
			if lookupErr != nil {
				return nil, fmt.Errorf("lookup customer after duplicate insert: %w", lookupErr)
			}
			return &contracts.CreateCustomerResponse{
				CustomerID: existing.ID,
				Success:    true,
				Message:    "customer already registered",
				Customer:   toWire(existing),
			}, nil
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	log.Info("customer created", slog.String("customer_id", c.ID.String()))

	return &contracts.CreateCustomerResponse{
		CustomerID: c.ID,
		Success:    true,
		Message:    "customer created",
		Customer:   toWire(c),
	}, nil
}

// GetCustomer looks a customer up by id. A miss is an InvalidCustomer fault.
func (s *CustomerService) GetCustomer(ctx context.Context, req *contracts.GetCustomerRequest) (*contracts.GetCustomerResponse, error) {
	c, err := s.repo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fault.InvalidCustomer()
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return &contracts.GetCustomerResponse{
		Customer: toWire(c),
		Success:  true,
	}, nil
}

// GetCustomerByEmail looks a customer up by email. A miss is reported
// in-band, never as a fault, so orchestrators can branch on it.
func (s *CustomerService) GetCustomerByEmail(ctx context.Context, req *contracts.GetCustomerByEmailRequest) (*contracts.GetCustomerByEmailResponse, error) {
	c, err := s.repo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.WithContext(ctx, s.log).Info("customer not found by email", slog.String("email", req.Email))
			return &contracts.GetCustomerByEmailResponse{
				Success: false,
				Message: "customer not found",
			}, nil
		}
		return nil, fmt.Errorf("get customer by email: %w", err)
	}

	return &contracts.GetCustomerByEmailResponse{
		Customer: toWire(c),
		Success:  true,
		Message:  "customer found",
	}, nil
}

// GetCustomerStatus reports activity and the account-age score. An unknown
// customer is reported inactive with score 0 rather than faulting.
func (s *CustomerService) GetCustomerStatus(ctx context.Context, req *contracts.GetCustomerStatusRequest) (*contracts.GetCustomerStatusResponse, error) {
	c, err := s.repo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &contracts.GetCustomerStatusResponse{
				IsActive: false,
				Score:    0,
				Success:  false,
			}, nil
		}
		return nil, fmt.Errorf("get customer status: %w", err)
	}

	return &contracts.GetCustomerStatusResponse{
		IsActive: c.IsActive(),
		Score:    c.Score(s.now()),
		Success:  true,
	}, nil
}

// toWire converts the stored customer to its wire record.
func toWire(c *domain.Customer) *contracts.Customer {
	status := contracts.CustomerActive
	if c.Status == domain.StatusBlocked {
		status = contracts.CustomerBlocked
	}
	return &contracts.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Status:    status,
		CreatedAt: c.CreatedAt,
	}
}
