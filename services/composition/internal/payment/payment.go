// Package payment abstracts the payment processor used by the order saga.
package payment

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/contracts"
)

// Processor charges a customer for an order. A declined payment returns
// approved=false with a nil error; err reports processor unavailability.
type Processor interface {
	ProcessPayment(ctx context.Context, orderID uuid.UUID, amount contracts.Money) (approved bool, err error)
}

// SimulatedProcessor approves roughly 9 of 10 payments after a short
// simulated latency. The seed is explicit so runs can be reproduced.
type SimulatedProcessor struct {
	log *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedProcessor(seed int64, log *slog.Logger) *SimulatedProcessor {
	return &SimulatedProcessor{
		log: log,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// ProcessPayment simulates the charge. Context cancellation aborts the
// simulated latency.
func (p *SimulatedProcessor) ProcessPayment(ctx context.Context, orderID uuid.UUID, amount contracts.Money) (bool, error) {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return false, ctx.Err()
	}

	p.mu.Lock()
	approved := p.rng.Intn(10) < 9
	p.mu.Unlock()

	if approved {
		p.log.Info("payment approved",
			slog.String("order_id", orderID.String()),
			slog.String("amount", amount.String()),
		)
	} else {
		p.log.Warn("payment declined",
			slog.String("order_id", orderID.String()),
			slog.String("amount", amount.String()),
		)
	}

	return approved, nil
}

// StaticProcessor always answers the same way. Test wiring.
type StaticProcessor struct {
	Approved bool
	Err      error
}

func (p *StaticProcessor) ProcessPayment(context.Context, uuid.UUID, contracts.Money) (bool, error) {
	return p.Approved, p.Err
}
