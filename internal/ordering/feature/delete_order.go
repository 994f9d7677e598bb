package feature

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/nikolayk812/eshop/internal/ordering/port"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
)

type DeleteOrderCommand struct {
	cqrs.CommandMarker

	OrderID uuid.UUID `validate:"required"`
}

type DeleteOrderResult struct {
	IsSuccess bool `json:"isSuccess"`
}

type DeleteOrderHandler struct {
	repo port.OrderRepository
}

func NewDeleteOrderHandler(repo port.OrderRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo}
}

func (h *DeleteOrderHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (DeleteOrderResult, error) {
	id, err := domain.OrderIDOf(cmd.OrderID)
	if err != nil {
		return DeleteOrderResult{}, asBadRequest(err)
	}

	if err := h.repo.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return DeleteOrderResult{}, orderNotFound(cmd.OrderID)
		}
		return DeleteOrderResult{}, fmt.Errorf("repo.DeleteOrder: %w", err)
	}

	return DeleteOrderResult{IsSuccess: true}, nil
}
