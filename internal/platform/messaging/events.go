// Package messaging defines the integration events exchanged between
// services and the Redis Streams transport that carries them.
package messaging

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	BasketCheckoutStream = "basket-checkout"
	OrderCreatedStream   = "order-created"
)

type Event interface {
	EventName() string
}

type IntegrationEvent struct {
	ID         uuid.UUID `json:"id"`
	OccurredOn time.Time `json:"occurredOn"`
	EventType  string    `json:"eventType"`
}

func NewIntegrationEvent(eventType string) IntegrationEvent {
	return IntegrationEvent{
		ID:         uuid.New(),
		OccurredOn: time.Now().UTC(),
		EventType:  eventType,
	}
}

func (e IntegrationEvent) EventName() string {
	return e.EventType
}

type BasketCheckoutItem struct {
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Color       string          `json:"color"`
}

type BasketCheckoutEvent struct {
	IntegrationEvent

	UserName   string          `json:"userName"`
	CustomerID uuid.UUID       `json:"customerId"`
	TotalPrice decimal.Decimal `json:"totalPrice"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	AddressLine  string `json:"addressLine"`
	Country      string `json:"country"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`

	CardName      string `json:"cardName"`
	CardNumber    string `json:"cardNumber"`
	Expiration    string `json:"expiration"`
	CVV           string `json:"cvv"`
	PaymentMethod int    `json:"paymentMethod"`

	Items []BasketCheckoutItem `json:"items"`
}

type OrderCreatedIntegrationEvent struct {
	IntegrationEvent

	OrderID    uuid.UUID       `json:"orderId"`
	CustomerID uuid.UUID       `json:"customerId"`
	OrderName  string          `json:"orderName"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
