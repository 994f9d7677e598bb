package feature

import (
	"context"
	"fmt"

	"github.com/nikolayk812/eshop/internal/catalog/domain"
	"github.com/nikolayk812/eshop/internal/catalog/port"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
)

type GetProductsByCategoryQuery struct {
	cqrs.QueryMarker

	Category string
}

type GetProductsByCategoryResult struct {
	Products []domain.Product `json:"products"`
}

type GetProductsByCategoryHandler struct {
	repo port.ProductRepository
}

func NewGetProductsByCategoryHandler(repo port.ProductRepository) *GetProductsByCategoryHandler {
	return &GetProductsByCategoryHandler{repo: repo}
}

func (h *GetProductsByCategoryHandler) Handle(ctx context.Context, q GetProductsByCategoryQuery) (GetProductsByCategoryResult, error) {
	if q.Category == "" {
		return GetProductsByCategoryResult{}, apperr.BadRequest("category is empty")
	}

	products, err := h.repo.ListProductsByCategory(ctx, q.Category)
	if err != nil {
		return GetProductsByCategoryResult{}, fmt.Errorf("repo.ListProductsByCategory: %w", err)
	}

	return GetProductsByCategoryResult{Products: products}, nil
}
