package feature

import (
	"context"
	"fmt"

	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/nikolayk812/eshop/internal/ordering/port"
	"github.com/nikolayk812/eshop/internal/platform/messaging"
	"go.uber.org/zap"
)

const orderCreatedEventType = "OrderCreatedIntegrationEvent"

// EventDispatcher handles the domain events an order raised once the order
// is saved. Failures are logged; the saved order stays.
type EventDispatcher struct {
	publisher   port.EventPublisher
	fulfillment bool
	log         *zap.Logger
}

// NewEventDispatcher publishes OrderCreatedIntegrationEvent only when
// fulfillment is on.
func NewEventDispatcher(publisher port.EventPublisher, fulfillment bool, log *zap.Logger) *EventDispatcher {
	return &EventDispatcher{publisher: publisher, fulfillment: fulfillment, log: log}
}

func (d *EventDispatcher) Dispatch(ctx context.Context, events []domain.DomainEvent) {
	for _, e := range events {
		var err error

		switch ev := e.(type) {
		case domain.OrderCreatedEvent:
			err = d.orderCreated(ctx, ev)
		default:
			d.log.Info("Domain Event handled", zap.String("domainEvent", e.EventType()))
		}

		if err != nil {
			d.log.Error("Domain Event failed",
				zap.String("domainEvent", e.EventType()),
				zap.Stringer("eventId", e.EventID()),
				zap.Error(err))
		}
	}
}

func (d *EventDispatcher) orderCreated(ctx context.Context, ev domain.OrderCreatedEvent) error {
	d.log.Info("Domain Event handled",
		zap.String("domainEvent", ev.EventType()),
		zap.Stringer("orderId", ev.Order.ID))

	if !d.fulfillment {
		return nil
	}

	integration := messaging.OrderCreatedIntegrationEvent{
		IntegrationEvent: messaging.NewIntegrationEvent(orderCreatedEventType),
		OrderID:          ev.Order.ID.UUID(),
		CustomerID:       ev.Order.CustomerID.UUID(),
		OrderName:        ev.Order.OrderName.String(),
		TotalPrice:       ev.Order.TotalPrice(),
	}
	if err := d.publisher.Publish(ctx, messaging.OrderCreatedStream, integration); err != nil {
		return fmt.Errorf("publisher.Publish: %w", err)
	}

	return nil
}
