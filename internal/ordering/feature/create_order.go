package feature

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/nikolayk812/eshop/internal/ordering/port"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/nikolayk812/eshop/internal/platform/logger"
	"go.uber.org/zap/zapcore"
)

type CreateOrderCommand struct {
	cqrs.CommandMarker

	Order OrderDto `json:"order"`
}

func (c CreateOrderCommand) Validate() error {
	if len(c.Order.OrderItems) == 0 {
		return &apperr.ValidationError{Errors: []apperr.FieldError{
			{Field: "OrderItems", Message: "OrderItems should not be empty"},
		}}
	}
	return nil
}

func (c CreateOrderCommand) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return marshalOrderLog(enc, c.Order)
}

type CreateOrderResult struct {
	ID uuid.UUID `json:"id"`
}

type CreateOrderHandler struct {
	repo   port.OrderRepository
	events *EventDispatcher
}

func NewCreateOrderHandler(repo port.OrderRepository, events *EventDispatcher) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo, events: events}
}

func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	order, err := newOrder(cmd.Order)
	if err != nil {
		return CreateOrderResult{}, asBadRequest(err)
	}

	if err := h.repo.AddOrder(ctx, order); err != nil {
		return CreateOrderResult{}, fmt.Errorf("repo.AddOrder: %w", err)
	}

	h.events.Dispatch(ctx, order.ClearDomainEvents())

	return CreateOrderResult{ID: order.ID.UUID()}, nil
}

func newOrder(dto OrderDto) (*domain.Order, error) {
	id, err := domain.OrderIDOf(uuid.New())
	if err != nil {
		return nil, err
	}
	customerID, err := domain.CustomerIDOf(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	v, err := dto.values()
	if err != nil {
		return nil, err
	}

	order := domain.CreateOrder(id, customerID, v.name, v.shipping, v.billing, v.payment)
	for _, item := range dto.OrderItems {
		productID, err := domain.ProductIDOf(item.ProductID)
		if err != nil {
			return nil, err
		}
		if err := order.Add(productID, item.Quantity, item.Price); err != nil {
			return nil, err
		}
	}

	return order, nil
}

func marshalOrderLog(enc zapcore.ObjectEncoder, o OrderDto) error {
	enc.AddString("id", o.ID.String())
	enc.AddString("customerId", o.CustomerID.String())
	enc.AddString("orderName", o.OrderName)
	enc.AddString("status", o.Status.String())
	enc.AddString("cardNumber", logger.Mask(o.Payment.CardNumber, 4))
	enc.AddInt("items", len(o.OrderItems))
	return nil
}
