// Package feature holds the basket commands and queries and their handlers.
package feature

import (
	"github.com/nikolayk812/eshop/internal/basket/port"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
)

func Register(m *cqrs.Mediator, repo port.BasketRepository, discount port.DiscountService, publisher port.EventPublisher) {
	cqrs.Register[GetBasketQuery, GetBasketResult](m, NewGetBasketHandler(repo))
	cqrs.Register[StoreBasketCommand, StoreBasketResult](m, NewStoreBasketHandler(repo, discount))
	cqrs.Register[DeleteBasketCommand, DeleteBasketResult](m, NewDeleteBasketHandler(repo))
	cqrs.Register[CheckoutBasketCommand, CheckoutBasketResult](m, NewCheckoutBasketHandler(repo, publisher))
}
