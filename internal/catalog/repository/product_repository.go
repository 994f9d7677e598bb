package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/eshop/internal/catalog/db"
	"github.com/nikolayk812/eshop/internal/catalog/domain"
	"github.com/nikolayk812/eshop/internal/catalog/port"
)

type productRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewProductWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q: db.New(tx),
	}
}

func (r *productRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if id == uuid.Nil {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("q.GetProduct[%s]: %w", id, domain.ErrProductNotFound)
		}
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	return mapProductToDomain(row), nil
}

func (r *productRepository) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, int64, error) {
	if limit <= 0 {
		return nil, 0, fmt.Errorf("limit must be positive")
	}
	if offset < 0 {
		return nil, 0, fmt.Errorf("offset is negative")
	}
	if limit > math.MaxInt32 || offset > math.MaxInt32 {
		return nil, 0, fmt.Errorf("limit %d or offset %d is out of int32 range", limit, offset)
	}

	rows, err := r.q.ListProducts(ctx, db.ListProductsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("q.ListProducts: %w", err)
	}

	count, err := r.q.CountProducts(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("q.CountProducts: %w", err)
	}

	return mapProductsToDomain(rows), count, nil
}

func (r *productRepository) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if category == "" {
		return nil, fmt.Errorf("category is empty")
	}

	rows, err := r.q.ListProductsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("q.ListProductsByCategory: %w", err)
	}

	return mapProductsToDomain(rows), nil
}

func (r *productRepository) AddProduct(ctx context.Context, product domain.Product) error {
	if product.ID == uuid.Nil {
		return fmt.Errorf("id is empty")
	}

	if err := r.q.InsertProduct(ctx, mapInsertParams(product)); err != nil {
		return fmt.Errorf("q.InsertProduct: %w", err)
	}

	return nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) (bool, error) {
	if product.ID == uuid.Nil {
		return false, fmt.Errorf("id is empty")
	}

	rowsAffected, err := r.q.UpdateProduct(ctx, db.UpdateProductParams{
		ID:          product.ID,
		Name:        product.Name,
		Category:    nonNil(product.Category),
		Description: product.Description,
		ImageFile:   product.ImageFile,
		Price:       product.Price,
	})
	if err != nil {
		return false, fmt.Errorf("q.UpdateProduct: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, fmt.Errorf("id is empty")
	}

	rowsAffected, err := r.q.DeleteProduct(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.DeleteProduct: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *productRepository) SeedProducts(ctx context.Context, products []domain.Product) (int, error) {
	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (int, error) {
		count, err := q.CountProducts(ctx)
		if err != nil {
			return 0, fmt.Errorf("q.CountProducts: %w", err)
		}
		if count > 0 {
			return 0, nil
		}

		for _, p := range products {
			if err := q.InsertProduct(ctx, mapInsertParams(p)); err != nil {
				return 0, fmt.Errorf("q.InsertProduct[%s]: %w", p.ID, err)
			}
		}

		return len(products), nil
	})
}

func mapInsertParams(p domain.Product) db.InsertProductParams {
	return db.InsertProductParams{
		ID:          p.ID,
		Name:        p.Name,
		Category:    nonNil(p.Category),
		Description: p.Description,
		ImageFile:   p.ImageFile,
		Price:       p.Price,
	}
}

func mapProductToDomain(row db.Product) domain.Product {
	return domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Category:    nonNil(row.Category),
		Description: row.Description,
		ImageFile:   row.ImageFile,
		Price:       row.Price,
	}
}

func mapProductsToDomain(rows []db.Product) []domain.Product {
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, mapProductToDomain(row))
	}
	return products
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
