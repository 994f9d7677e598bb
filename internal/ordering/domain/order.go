package domain

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID        OrderItemID
	OrderID   OrderID
	ProductID ProductID
	Quantity  int
	Price     decimal.Decimal
}

// Order is the aggregate root of the ordering context. Items and domain
// events are only changed through its methods.
type Order struct {
	ID              OrderID
	CustomerID      CustomerID
	OrderName       OrderName
	ShippingAddress Address
	BillingAddress  Address
	Payment         Payment
	Status          OrderStatus

	items  []OrderItem
	events []DomainEvent
}

// CreateOrder starts a pending order and raises OrderCreatedEvent.
func CreateOrder(id OrderID, customerID CustomerID, name OrderName, shipping, billing Address, payment Payment) *Order {
	o := &Order{
		ID:              id,
		CustomerID:      customerID,
		OrderName:       name,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		Payment:         payment,
		Status:          OrderStatusPending,
	}
	o.raise(OrderCreatedEvent{eventMeta: newEventMeta(), Order: o})
	return o
}

// RestoreOrder rebuilds a stored order without raising events.
func RestoreOrder(id OrderID, customerID CustomerID, name OrderName, shipping, billing Address, payment Payment, status OrderStatus, items []OrderItem) *Order {
	return &Order{
		ID:              id,
		CustomerID:      customerID,
		OrderName:       name,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		Payment:         payment,
		Status:          status,
		items:           slices.Clone(items),
	}
}

func (o *Order) Update(name OrderName, shipping, billing Address, payment Payment, status OrderStatus) error {
	if !status.Valid() {
		return domainErr("OrderStatus is not valid.")
	}

	o.OrderName = name
	o.ShippingAddress = shipping
	o.BillingAddress = billing
	o.Payment = payment
	o.Status = status

	o.raise(OrderUpdatedEvent{eventMeta: newEventMeta(), Order: o})
	return nil
}

func (o *Order) Add(productID ProductID, quantity int, price decimal.Decimal) error {
	if quantity <= 0 {
		return domainErr("Quantity must be greater than zero.")
	}
	if !price.IsPositive() {
		return domainErr("Price must be greater than zero.")
	}

	itemID, _ := OrderItemIDOf(uuid.New())
	o.items = append(o.items, OrderItem{
		ID:        itemID,
		OrderID:   o.ID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	})
	return nil
}

// Remove drops every line of productID.
func (o *Order) Remove(productID ProductID) {
	o.items = slices.DeleteFunc(o.items, func(item OrderItem) bool {
		return item.ProductID == productID
	})
}

func (o *Order) Items() []OrderItem {
	return slices.Clone(o.items)
}

func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (o *Order) DomainEvents() []DomainEvent {
	return slices.Clone(o.events)
}

// ClearDomainEvents returns the pending events and forgets them.
func (o *Order) ClearDomainEvents() []DomainEvent {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) raise(e DomainEvent) {
	o.events = append(o.events, e)
}
