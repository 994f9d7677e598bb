package feature

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/catalog/port"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
)

type DeleteProductCommand struct {
	cqrs.CommandMarker

	ID uuid.UUID `validate:"required"`
}

type DeleteProductResult struct {
	IsSuccess bool `json:"isSuccess"`
}

type DeleteProductHandler struct {
	repo port.ProductRepository
}

func NewDeleteProductHandler(repo port.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) (DeleteProductResult, error) {
	deleted, err := h.repo.DeleteProduct(ctx, cmd.ID)
	if err != nil {
		return DeleteProductResult{}, fmt.Errorf("repo.DeleteProduct: %w", err)
	}
	if !deleted {
		return DeleteProductResult{}, productNotFound(cmd.ID)
	}

	return DeleteProductResult{IsSuccess: true}, nil
}
