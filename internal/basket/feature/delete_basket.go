package feature

import (
	"context"
	"fmt"

	"github.com/nikolayk812/eshop/internal/basket/port"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
)

type DeleteBasketCommand struct {
	cqrs.CommandMarker

	UserName string `validate:"required"`
}

type DeleteBasketResult struct {
	IsSuccess bool `json:"isSuccess"`
}

type DeleteBasketHandler struct {
	repo port.BasketRepository
}

func NewDeleteBasketHandler(repo port.BasketRepository) *DeleteBasketHandler {
	return &DeleteBasketHandler{repo: repo}
}

func (h *DeleteBasketHandler) Handle(ctx context.Context, cmd DeleteBasketCommand) (DeleteBasketResult, error) {
	if _, err := h.repo.DeleteBasket(ctx, cmd.UserName); err != nil {
		return DeleteBasketResult{}, fmt.Errorf("repo.DeleteBasket: %w", err)
	}

	return DeleteBasketResult{IsSuccess: true}, nil
}
