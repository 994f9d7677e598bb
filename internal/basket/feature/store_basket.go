package feature

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikolayk812/eshop/internal/basket/domain"
	"github.com/nikolayk812/eshop/internal/basket/port"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
)

type StoreBasketCommand struct {
	cqrs.CommandMarker

	Cart *domain.ShoppingCart `json:"cart" validate:"required"`
}

func (c StoreBasketCommand) Validate() error {
	if c.Cart != nil && strings.TrimSpace(c.Cart.UserName) == "" {
		return &apperr.ValidationError{Errors: []apperr.FieldError{
			{Field: "UserName", Message: "UserName is required"},
		}}
	}
	return nil
}

type StoreBasketResult struct {
	UserName string `json:"userName"`
}

type StoreBasketHandler struct {
	repo     port.BasketRepository
	discount port.DiscountService
}

func NewStoreBasketHandler(repo port.BasketRepository, discount port.DiscountService) *StoreBasketHandler {
	return &StoreBasketHandler{repo: repo, discount: discount}
}

// Handle deducts the current coupon of every item from its list price and
// stores the cart. Re-storing a loaded cart does not discount it twice.
func (h *StoreBasketHandler) Handle(ctx context.Context, cmd StoreBasketCommand) (StoreBasketResult, error) {
	cart := domain.ShoppingCart{
		UserName: cmd.Cart.UserName,
		Items:    make([]domain.ShoppingCartItem, len(cmd.Cart.Items)),
	}
	copy(cart.Items, cmd.Cart.Items)

	for i, item := range cart.Items {
		amount, err := h.discount.GetDiscount(ctx, item.ProductName)
		if err != nil {
			return StoreBasketResult{}, fmt.Errorf("discount.GetDiscount: %w", err)
		}
		cart.Items[i].ApplyDiscount(amount)
	}

	stored, err := h.repo.StoreBasket(ctx, cart)
	if err != nil {
		return StoreBasketResult{}, fmt.Errorf("repo.StoreBasket: %w", err)
	}

	return StoreBasketResult{UserName: stored.UserName}, nil
}
