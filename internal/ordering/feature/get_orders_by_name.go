package feature

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikolayk812/eshop/internal/ordering/port"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
)

// GetOrdersByNameQuery matches orders whose name contains Name.
type GetOrdersByNameQuery struct {
	cqrs.QueryMarker

	Name string
}

type GetOrdersByNameResult struct {
	Orders []OrderDto `json:"orders"`
}

type GetOrdersByNameHandler struct {
	repo port.OrderRepository
}

func NewGetOrdersByNameHandler(repo port.OrderRepository) *GetOrdersByNameHandler {
	return &GetOrdersByNameHandler{repo: repo}
}

func (h *GetOrdersByNameHandler) Handle(ctx context.Context, q GetOrdersByNameQuery) (GetOrdersByNameResult, error) {
	if strings.TrimSpace(q.Name) == "" {
		return GetOrdersByNameResult{}, apperr.BadRequest("order name is empty")
	}

	orders, err := h.repo.FindOrdersByName(ctx, q.Name)
	if err != nil {
		return GetOrdersByNameResult{}, fmt.Errorf("repo.FindOrdersByName: %w", err)
	}

	return GetOrdersByNameResult{Orders: toOrderDtos(orders)}, nil
}
