package feature

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/nikolayk812/eshop/internal/ordering/port"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
)

type GetOrdersByCustomerQuery struct {
	cqrs.QueryMarker

	CustomerID uuid.UUID
}

type GetOrdersByCustomerResult struct {
	Orders []OrderDto `json:"orders"`
}

type GetOrdersByCustomerHandler struct {
	repo port.OrderRepository
}

func NewGetOrdersByCustomerHandler(repo port.OrderRepository) *GetOrdersByCustomerHandler {
	return &GetOrdersByCustomerHandler{repo: repo}
}

func (h *GetOrdersByCustomerHandler) Handle(ctx context.Context, q GetOrdersByCustomerQuery) (GetOrdersByCustomerResult, error) {
	customerID, err := domain.CustomerIDOf(q.CustomerID)
	if err != nil {
		return GetOrdersByCustomerResult{}, asBadRequest(err)
	}

	orders, err := h.repo.FindOrdersByCustomer(ctx, customerID)
	if err != nil {
		return GetOrdersByCustomerResult{}, fmt.Errorf("repo.FindOrdersByCustomer: %w", err)
	}

	return GetOrdersByCustomerResult{Orders: toOrderDtos(orders)}, nil
}
