package port

import (
	"context"

	"github.com/nikolayk812/eshop/internal/basket/domain"
	"github.com/nikolayk812/eshop/internal/platform/messaging"
	"github.com/shopspring/decimal"
)

type BasketRepository interface {
	GetBasket(ctx context.Context, userName string) (domain.ShoppingCart, error)
	StoreBasket(ctx context.Context, cart domain.ShoppingCart) (domain.ShoppingCart, error)
	DeleteBasket(ctx context.Context, userName string) (bool, error)
}

type DiscountService interface {
	// GetDiscount returns the amount to deduct from the unit price of productName.
	GetDiscount(ctx context.Context, productName string) (decimal.Decimal, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, stream string, event messaging.Event) error
}
