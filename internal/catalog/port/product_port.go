package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/catalog/domain"
)

type ProductRepository interface {
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	// ListProducts returns one page ordered by name and the total number of products.
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, int64, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	AddProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) (bool, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error)
	// SeedProducts inserts products only when the catalog is empty.
	SeedProducts(ctx context.Context, products []domain.Product) (int, error)
}
