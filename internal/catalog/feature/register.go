// Package feature holds the catalog commands and queries and their handlers.
package feature

import (
	"github.com/nikolayk812/eshop/internal/catalog/port"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
)

func Register(m *cqrs.Mediator, repo port.ProductRepository) {
	cqrs.Register[CreateProductCommand, CreateProductResult](m, NewCreateProductHandler(repo))
	cqrs.Register[UpdateProductCommand, UpdateProductResult](m, NewUpdateProductHandler(repo))
	cqrs.Register[DeleteProductCommand, DeleteProductResult](m, NewDeleteProductHandler(repo))
	cqrs.Register[GetProductsQuery, GetProductsResult](m, NewGetProductsHandler(repo))
	cqrs.Register[GetProductByIDQuery, GetProductByIDResult](m, NewGetProductByIDHandler(repo))
	cqrs.Register[GetProductsByCategoryQuery, GetProductsByCategoryResult](m, NewGetProductsByCategoryHandler(repo))
}
