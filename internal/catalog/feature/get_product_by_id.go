package feature

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/catalog/domain"
	"github.com/nikolayk812/eshop/internal/catalog/port"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
)

type GetProductByIDQuery struct {
	cqrs.QueryMarker

	ID uuid.UUID
}

type GetProductByIDResult struct {
	Product domain.Product `json:"product"`
}

type GetProductByIDHandler struct {
	repo port.ProductRepository
}

func NewGetProductByIDHandler(repo port.ProductRepository) *GetProductByIDHandler {
	return &GetProductByIDHandler{repo: repo}
}

func (h *GetProductByIDHandler) Handle(ctx context.Context, q GetProductByIDQuery) (GetProductByIDResult, error) {
	product, err := h.repo.GetProduct(ctx, q.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return GetProductByIDResult{}, productNotFound(q.ID)
		}
		return GetProductByIDResult{}, fmt.Errorf("repo.GetProduct: %w", err)
	}

	return GetProductByIDResult{Product: product}, nil
}

func productNotFound(id uuid.UUID) error {
	return apperr.NotFound("Product", id)
}
