package feature

import (
	"context"
	"fmt"

	"github.com/nikolayk812/eshop/internal/ordering/port"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/nikolayk812/eshop/internal/platform/pagination"
)

// GetOrdersQuery addresses a zero-based page of orders sorted by name.
type GetOrdersQuery struct {
	cqrs.QueryMarker

	PageIndex int
	PageSize  int
}

type GetOrdersResult struct {
	Orders pagination.Result[OrderDto] `json:"orders"`
}

type GetOrdersHandler struct {
	repo port.OrderRepository
}

func NewGetOrdersHandler(repo port.OrderRepository) *GetOrdersHandler {
	return &GetOrdersHandler{repo: repo}
}

func (h *GetOrdersHandler) Handle(ctx context.Context, q GetOrdersQuery) (GetOrdersResult, error) {
	page := pagination.Request{PageIndex: q.PageIndex, PageSize: q.PageSize}.Normalize()

	orders, count, err := h.repo.ListOrders(ctx, page.PageSize, page.Offset())
	if err != nil {
		return GetOrdersResult{}, fmt.Errorf("repo.ListOrders: %w", err)
	}

	return GetOrdersResult{
		Orders: pagination.NewResult(page, count, toOrderDtos(orders)),
	}, nil
}
