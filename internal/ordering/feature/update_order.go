package feature

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/nikolayk812/eshop/internal/ordering/port"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"go.uber.org/zap/zapcore"
)

type UpdateOrderCommand struct {
	cqrs.CommandMarker

	Order OrderDto `json:"order"`
}

func (c UpdateOrderCommand) Validate() error {
	if c.Order.ID == uuid.Nil {
		return &apperr.ValidationError{Errors: []apperr.FieldError{
			{Field: "ID", Message: "ID is required"},
		}}
	}
	return nil
}

func (c UpdateOrderCommand) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return marshalOrderLog(enc, c.Order)
}

type UpdateOrderResult struct {
	IsSuccess bool `json:"isSuccess"`
}

type UpdateOrderHandler struct {
	repo   port.OrderRepository
	events *EventDispatcher
}

func NewUpdateOrderHandler(repo port.OrderRepository, events *EventDispatcher) *UpdateOrderHandler {
	return &UpdateOrderHandler{repo: repo, events: events}
}

// Handle replaces the name, addresses, payment and status of an order. Items
// are left as they are.
func (h *UpdateOrderHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (UpdateOrderResult, error) {
	id, err := domain.OrderIDOf(cmd.Order.ID)
	if err != nil {
		return UpdateOrderResult{}, asBadRequest(err)
	}

	order, err := h.repo.GetOrder(ctx, id)
	if errors.Is(err, domain.ErrOrderNotFound) {
		return UpdateOrderResult{}, orderNotFound(cmd.Order.ID)
	}
	if err != nil {
		return UpdateOrderResult{}, fmt.Errorf("repo.GetOrder: %w", err)
	}

	v, err := cmd.Order.values()
	if err != nil {
		return UpdateOrderResult{}, asBadRequest(err)
	}
	if err := order.Update(v.name, v.shipping, v.billing, v.payment, cmd.Order.Status); err != nil {
		return UpdateOrderResult{}, asBadRequest(err)
	}

	if err := h.repo.UpdateOrder(ctx, order); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return UpdateOrderResult{}, orderNotFound(cmd.Order.ID)
		}
		return UpdateOrderResult{}, fmt.Errorf("repo.UpdateOrder: %w", err)
	}

	h.events.Dispatch(ctx, order.ClearDomainEvents())

	return UpdateOrderResult{IsSuccess: true}, nil
}
