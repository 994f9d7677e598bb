// Package feature holds the ordering commands and queries, their handlers and
// the domain event dispatcher.
package feature

import (
	"github.com/nikolayk812/eshop/internal/ordering/port"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
)

func Register(m *cqrs.Mediator, repo port.OrderRepository, events *EventDispatcher) {
	cqrs.Register[CreateOrderCommand, CreateOrderResult](m, NewCreateOrderHandler(repo, events))
	cqrs.Register[UpdateOrderCommand, UpdateOrderResult](m, NewUpdateOrderHandler(repo, events))
	cqrs.Register[DeleteOrderCommand, DeleteOrderResult](m, NewDeleteOrderHandler(repo))
	cqrs.Register[GetOrdersQuery, GetOrdersResult](m, NewGetOrdersHandler(repo))
	cqrs.Register[GetOrdersByNameQuery, GetOrdersByNameResult](m, NewGetOrdersByNameHandler(repo))
	cqrs.Register[GetOrdersByCustomerQuery, GetOrdersByCustomerResult](m, NewGetOrdersByCustomerHandler(repo))
}
