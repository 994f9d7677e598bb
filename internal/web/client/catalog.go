package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

type Catalog struct {
	base
}

func NewCatalog(baseURL string, hc *http.Client) *Catalog {
	return &Catalog{base: newBase(baseURL, hc)}
}

func (c *Catalog) GetProducts(ctx context.Context, pageNumber, pageSize int) ([]Product, error) {
	q := url.Values{}
	q.Set("pageNumber", fmt.Sprint(pageNumber))
	q.Set("pageSize", fmt.Sprint(pageSize))

	var res struct {
		Products []Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/products?"+q.Encode(), nil, &res); err != nil {
		return nil, err
	}
	return res.Products, nil
}

func (c *Catalog) GetProduct(ctx context.Context, id uuid.UUID) (Product, error) {
	var res struct {
		Product Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/"+id.String(), nil, &res); err != nil {
		return Product{}, err
	}
	return res.Product, nil
}

func (c *Catalog) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	var res struct {
		Products []Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/category/"+url.PathEscape(category), nil, &res); err != nil {
		return nil, err
	}
	return res.Products, nil
}
