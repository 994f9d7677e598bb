package feature

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/catalog/domain"
	"github.com/nikolayk812/eshop/internal/catalog/port"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/shopspring/decimal"
)

type UpdateProductCommand struct {
	cqrs.CommandMarker

	ID          uuid.UUID       `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required,min=2,max=150"`
	Category    []string        `json:"category"`
	Description string          `json:"description"`
	ImageFile   string          `json:"imageFile"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
}

type UpdateProductResult struct {
	IsSuccess bool `json:"isSuccess"`
}

type UpdateProductHandler struct {
	repo port.ProductRepository
}

func NewUpdateProductHandler(repo port.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (UpdateProductResult, error) {
	updated, err := h.repo.UpdateProduct(ctx, domain.Product{
		ID:          cmd.ID,
		Name:        cmd.Name,
		Category:    cmd.Category,
		Description: cmd.Description,
		ImageFile:   cmd.ImageFile,
		Price:       cmd.Price,
	})
	if err != nil {
		return UpdateProductResult{}, fmt.Errorf("repo.UpdateProduct: %w", err)
	}
	if !updated {
		return UpdateProductResult{}, productNotFound(cmd.ID)
	}

	return UpdateProductResult{IsSuccess: true}, nil
}
