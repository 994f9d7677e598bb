package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

type Ordering struct {
	base
}

func NewOrdering(baseURL string, hc *http.Client) *Ordering {
	return &Ordering{base: newBase(baseURL, hc)}
}

func (c *Ordering) GetOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]Order, error) {
	var res struct {
		Orders []Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders/customer/"+customerID.String(), nil, &res); err != nil {
		return nil, err
	}
	return res.Orders, nil
}

func (c *Ordering) GetOrdersByName(ctx context.Context, name string) ([]Order, error) {
	var res struct {
		Orders []Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(name), nil, &res); err != nil {
		return nil, err
	}
	return res.Orders, nil
}
