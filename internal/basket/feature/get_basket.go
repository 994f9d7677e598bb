package feature

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/eshop/internal/basket/domain"
	"github.com/nikolayk812/eshop/internal/basket/port"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
)

type GetBasketQuery struct {
	cqrs.QueryMarker

	UserName string
}

type GetBasketResult struct {
	Cart domain.ShoppingCart `json:"cart"`
}

type GetBasketHandler struct {
	repo port.BasketRepository
}

func NewGetBasketHandler(repo port.BasketRepository) *GetBasketHandler {
	return &GetBasketHandler{repo: repo}
}

func (h *GetBasketHandler) Handle(ctx context.Context, q GetBasketQuery) (GetBasketResult, error) {
	cart, err := h.repo.GetBasket(ctx, q.UserName)
	if errors.Is(err, domain.ErrBasketNotFound) {
		return GetBasketResult{}, basketNotFound(q.UserName)
	}
	if err != nil {
		return GetBasketResult{}, fmt.Errorf("repo.GetBasket: %w", err)
	}

	return GetBasketResult{Cart: cart}, nil
}

func basketNotFound(userName string) error {
	return apperr.NotFound("Basket", userName)
}
