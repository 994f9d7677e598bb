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

type CreateProductCommand struct {
	cqrs.CommandMarker

	Name        string          `json:"name" validate:"required"`
	Category    []string        `json:"category" validate:"min=1"`
	Description string          `json:"description"`
	ImageFile   string          `json:"imageFile" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
}

type CreateProductResult struct {
	ID uuid.UUID `json:"id"`
}

type CreateProductHandler struct {
	repo port.ProductRepository
}

func NewCreateProductHandler(repo port.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (CreateProductResult, error) {
	product := domain.Product{
		ID:          uuid.New(),
		Name:        cmd.Name,
		Category:    cmd.Category,
		Description: cmd.Description,
		ImageFile:   cmd.ImageFile,
		Price:       cmd.Price,
	}

	if err := h.repo.AddProduct(ctx, product); err != nil {
		return CreateProductResult{}, fmt.Errorf("repo.AddProduct: %w", err)
	}

	return CreateProductResult{ID: product.ID}, nil
}
