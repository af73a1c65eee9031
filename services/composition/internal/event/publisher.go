// Package event publishes order lifecycle events from the saga. Publishing
// is advisory: a broker problem is logged and never fails the order.
package event

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/kafka"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/logger"
)

const (
	TopicOrderPlaced = "order.placed"
	TopicOrderFailed = "order.failed"

	source = "composition-service"
)

// Publisher emits order.placed and order.failed events.
type Publisher struct {
	producer *kafka.Producer
	log      *slog.Logger
}

func NewPublisher(producer *kafka.Producer, log *slog.Logger) *Publisher {
	return &Publisher{producer: producer, log: log}
}

// OrderPlaced reports a successfully confirmed order.
func (p *Publisher) OrderPlaced(ctx context.Context, orderID uuid.UUID, customerEmail string, totalCents int64) {
	p.publish(ctx, TopicOrderPlaced, "order.placed", orderID, map[string]any{
		"order_id":       orderID.String(),
		"customer_email": customerEmail,
		"total_cents":    totalCents,
	})
}

// OrderFailed reports a saga that ended in a fault, after compensation.
func (p *Publisher) OrderFailed(ctx context.Context, orderID uuid.UUID, customerEmail, faultCode string) {
	p.publish(ctx, TopicOrderFailed, "order.failed", orderID, map[string]any{
		"order_id":       orderID.String(),
		"customer_email": customerEmail,
		"fault_code":     faultCode,
	})
}

func (p *Publisher) publish(ctx context.Context, topic, eventType string, orderID uuid.UUID, data map[string]any) {
	if p == nil || p.producer == nil {
		return
	}

	ev, err := kafka.NewEvent(eventType, orderID.String(), "order", source, data)
	if err != nil {
		p.log.Warn("build event failed", slog.String("error", err.Error()))
		return
	}
	ev.WithCorrelationID(logger.CorrelationIDFromContext(ctx))

	if err := p.producer.Publish(ctx, topic, ev); err != nil {
		p.log.Warn("publish event failed",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)
	}
}
