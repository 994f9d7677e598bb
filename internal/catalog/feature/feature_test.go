package feature_test

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/catalog/domain"
	"github.com/nikolayk812/eshop/internal/catalog/feature"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

func TestCreateProduct(t *testing.T) {
	tests := []struct {
		name       string
		cmd        feature.CreateProductCommand
		wantErrors []string
	}{
		{
			name: "valid product: ok",
			cmd: feature.CreateProductCommand{
				Name:      "IPhone X",
				Category:  []string{"Phone"},
				ImageFile: "product-1.png",
				Price:     decimal.NewFromInt(1000),
			},
		},
		{
			name: "empty product: every rule reported",
			cmd:  feature.CreateProductCommand{},
			wantErrors: []string{
				"Name is required",
				"Category is required",
				"ImageFile is required",
				"Price must be greater than 0",
			},
		},
		{
			name: "negative price: error",
			cmd: feature.CreateProductCommand{
				Name:      "IPhone X",
				Category:  []string{"Phone"},
				ImageFile: "product-1.png",
				Price:     decimal.NewFromInt(-1),
			},
			wantErrors: []string{"Price must be greater than 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			m := newMediator(repo)

			got, err := cqrs.Send[feature.CreateProductCommand, feature.CreateProductResult](t.Context(), m, tt.cmd)
			if tt.wantErrors != nil {
				assertValidation(t, err, tt.wantErrors)
				assert.Empty(t, repo.products)
				return
			}
			require.NoError(t, err)
			require.NotEqual(t, uuid.Nil, got.ID)

			stored, ok := repo.products[got.ID]
			require.True(t, ok)
			assert.Equal(t, tt.cmd.Name, stored.Name)
			assert.True(t, tt.cmd.Price.Equal(stored.Price))
		})
	}
}

func TestGetProductByID(t *testing.T) {
	repo := newFakeRepo()
	existing := randomProduct()
	repo.products[existing.ID] = existing
	m := newMediator(repo)

	got, err := cqrs.Send[feature.GetProductByIDQuery, feature.GetProductByIDResult](t.Context(), m,
		feature.GetProductByIDQuery{ID: existing.ID})
	require.NoError(t, err)
	assert.Equal(t, existing, got.Product)

	missing := uuid.New()
	_, err = cqrs.Send[feature.GetProductByIDQuery, feature.GetProductByIDResult](t.Context(), m,
		feature.GetProductByIDQuery{ID: missing})
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.EqualError(t, err, fmt.Sprintf(`Entity "Product" (%s) was not found.`, missing))
}

func TestGetProducts(t *testing.T) {
	repo := newFakeRepo()
	for range 15 {
		p := randomProduct()
		repo.products[p.ID] = p
	}
	m := newMediator(repo)

	tests := []struct {
		name      string
		query     feature.GetProductsQuery
		wantCount int
	}{
		{name: "defaults to first page of ten", query: feature.GetProductsQuery{}, wantCount: 10},
		{name: "second page holds the rest", query: feature.GetProductsQuery{PageNumber: 2, PageSize: 10}, wantCount: 5},
		{name: "page past the end is empty", query: feature.GetProductsQuery{PageNumber: 9, PageSize: 10}, wantCount: 0},
		{name: "page beyond int32 offset is empty", query: feature.GetProductsQuery{PageNumber: 300_000_000, PageSize: 10}, wantCount: 0},
		{name: "largest page number is empty", query: feature.GetProductsQuery{PageNumber: math.MaxInt, PageSize: 100}, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cqrs.Send[feature.GetProductsQuery, feature.GetProductsResult](t.Context(), m, tt.query)
			require.NoError(t, err)
			assert.Len(t, got.Products, tt.wantCount)
			assert.Equal(t, int64(15), got.Count)
		})
	}
}

func TestGetProductsByCategory(t *testing.T) {
	repo := newFakeRepo()
	phone := randomProduct()
	phone.Category = []string{"Phone", "Smartphone"}
	book := randomProduct()
	book.Category = []string{"Book"}
	repo.products[phone.ID] = phone
	repo.products[book.ID] = book
	m := newMediator(repo)

	got, err := cqrs.Send[feature.GetProductsByCategoryQuery, feature.GetProductsByCategoryResult](t.Context(), m,
		feature.GetProductsByCategoryQuery{Category: "Smartphone"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Product{phone}, got.Products)

	_, err = cqrs.Send[feature.GetProductsByCategoryQuery, feature.GetProductsByCategoryResult](t.Context(), m,
		feature.GetProductsByCategoryQuery{})
	var badRequest *apperr.BadRequestError
	require.ErrorAs(t, err, &badRequest)
}

func TestUpdateProduct(t *testing.T) {
	existing := randomProduct()

	tests := []struct {
		name         string
		cmd          feature.UpdateProductCommand
		wantNotFound bool
		wantErrors   []string
	}{
		{
			name: "update existing product: ok",
			cmd: feature.UpdateProductCommand{
				ID:       existing.ID,
				Name:     "IPhone XS",
				Category: []string{"Phone"},
				Price:    decimal.RequireFromString("1100.50"),
			},
		},
		{
			name: "update missing product: not found",
			cmd: feature.UpdateProductCommand{
				ID:    uuid.New(),
				Name:  "IPhone XS",
				Price: decimal.NewFromInt(1),
			},
			wantNotFound: true,
		},
		{
			name: "invalid update: validation error",
			cmd: feature.UpdateProductCommand{
				Name:  "X",
				Price: decimal.Zero,
			},
			wantErrors: []string{
				"ID is required",
				"Name must be at least 2 characters",
				"Price must be greater than 0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.products[existing.ID] = existing
			m := newMediator(repo)

			got, err := cqrs.Send[feature.UpdateProductCommand, feature.UpdateProductResult](t.Context(), m, tt.cmd)
			switch {
			case tt.wantErrors != nil:
				assertValidation(t, err, tt.wantErrors)
				return
			case tt.wantNotFound:
				var notFound *apperr.NotFoundError
				require.ErrorAs(t, err, &notFound)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.IsSuccess)
			assert.Equal(t, "IPhone XS", repo.products[existing.ID].Name)
		})
	}
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeRepo()
	existing := randomProduct()
	repo.products[existing.ID] = existing
	m := newMediator(repo)

	got, err := cqrs.Send[feature.DeleteProductCommand, feature.DeleteProductResult](t.Context(), m,
		feature.DeleteProductCommand{ID: existing.ID})
	require.NoError(t, err)
	assert.True(t, got.IsSuccess)
	assert.Empty(t, repo.products)

	_, err = cqrs.Send[feature.DeleteProductCommand, feature.DeleteProductResult](t.Context(), m,
		feature.DeleteProductCommand{ID: existing.ID})
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = cqrs.Send[feature.DeleteProductCommand, feature.DeleteProductResult](t.Context(), m,
		feature.DeleteProductCommand{})
	assertValidation(t, err, []string{"ID is required"})
}

func newMediator(repo *fakeRepo) *cqrs.Mediator {
	m := cqrs.NewDefault(noop.NewTracerProvider().Tracer(""), zap.NewNop())
	feature.Register(m, repo)
	return m
}

func assertValidation(t *testing.T, err error, want []string) {
	t.Helper()

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)

	got := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		got = append(got, fe.Message)
	}
	assert.Equal(t, want, got)
}

func randomProduct() domain.Product {
	return domain.Product{
		ID:          uuid.New(),
		Name:        gofakeit.ProductName(),
		Category:    []string{gofakeit.ProductCategory()},
		Description: gofakeit.ProductDescription(),
		ImageFile:   gofakeit.Word() + ".png",
		Price:       decimal.NewFromFloat(gofakeit.Price(1, 1000)).Round(2),
	}
}

type fakeRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]domain.Product
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: make(map[uuid.UUID]domain.Product)}
}

func (r *fakeRepo) GetProduct(_ context.Context, id uuid.UUID) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("get %s: %w", id, domain.ErrProductNotFound)
	}
	return p, nil
}

func (r *fakeRepo) ListProducts(_ context.Context, limit, offset int) ([]domain.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if offset < 0 || offset > math.MaxInt32 {
		return nil, 0, fmt.Errorf("offset %d is out of range", offset)
	}

	all := r.sorted()
	if offset >= len(all) {
		return []domain.Product{}, int64(len(all)), nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], int64(len(all)), nil
}

func (r *fakeRepo) ListProductsByCategory(_ context.Context, category string) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Product
	for _, p := range r.sorted() {
		if p.InCategory(category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) AddProduct(_ context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = product
	return nil
}

func (r *fakeRepo) UpdateProduct(_ context.Context, product domain.Product) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return false, nil
	}
	r.products[product.ID] = product
	return true, nil
}

func (r *fakeRepo) DeleteProduct(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

func (r *fakeRepo) SeedProducts(_ context.Context, products []domain.Product) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.products) > 0 {
		return 0, nil
	}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return len(products), nil
}

func (r *fakeRepo) sorted() []domain.Product {
	all := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	slices.SortFunc(all, func(a, b domain.Product) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return all
}
