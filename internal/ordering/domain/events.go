package domain

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is raised by an aggregate and dispatched after it is saved.
type DomainEvent interface {
	EventID() uuid.UUID
	OccurredOn() time.Time
	EventType() string
}

type eventMeta struct {
	id         uuid.UUID
	occurredOn time.Time
}

func newEventMeta() eventMeta {
	return eventMeta{id: uuid.New(), occurredOn: time.Now().UTC()}
}

func (m eventMeta) EventID() uuid.UUID    { return m.id }
func (m eventMeta) OccurredOn() time.Time { return m.occurredOn }

type OrderCreatedEvent struct {
	eventMeta
	Order *Order
}

func (OrderCreatedEvent) EventType() string { return "OrderCreatedEvent" }

type OrderUpdatedEvent struct {
	eventMeta
	Order *Order
}

func (OrderUpdatedEvent) EventType() string { return "OrderUpdatedEvent" }
