package feature

import (
	"context"
	"fmt"

	"github.com/nikolayk812/eshop/internal/catalog/domain"
	"github.com/nikolayk812/eshop/internal/catalog/port"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/nikolayk812/eshop/internal/platform/pagination"
)

// GetProductsQuery addresses a one-based page of the catalog.
type GetProductsQuery struct {
	cqrs.QueryMarker

	PageNumber int
	PageSize   int
}

type GetProductsResult struct {
	Products []domain.Product `json:"products"`
	Count    int64            `json:"count"`
}

type GetProductsHandler struct {
	repo port.ProductRepository
}

func NewGetProductsHandler(repo port.ProductRepository) *GetProductsHandler {
	return &GetProductsHandler{repo: repo}
}

func (h *GetProductsHandler) Handle(ctx context.Context, q GetProductsQuery) (GetProductsResult, error) {
	page := pagination.Request{PageIndex: q.PageNumber - 1, PageSize: q.PageSize}.Normalize()

	products, count, err := h.repo.ListProducts(ctx, page.PageSize, page.Offset())
	if err != nil {
		return GetProductsResult{}, fmt.Errorf("repo.ListProducts: %w", err)
	}

	return GetProductsResult{Products: products, Count: count}, nil
}
