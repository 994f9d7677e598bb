package port

import (
	"context"

	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/nikolayk812/eshop/internal/platform/messaging"
)

type OrderRepository interface {
	GetOrder(ctx context.Context, id domain.OrderID) (*domain.Order, error)
	// ListOrders returns a page of orders sorted by order name and the total count.
	ListOrders(ctx context.Context, limit, offset int) ([]*domain.Order, int64, error)
	FindOrdersByName(ctx context.Context, name string) ([]*domain.Order, error)
	FindOrdersByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*domain.Order, error)
	AddOrder(ctx context.Context, order *domain.Order) error
	UpdateOrder(ctx context.Context, order *domain.Order) error
	DeleteOrder(ctx context.Context, id domain.OrderID) error
}

type EventPublisher interface {
	Publish(ctx context.Context, stream string, event messaging.Event) error
}
