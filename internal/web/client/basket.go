package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

type Basket struct {
	base
}

func NewBasket(baseURL string, hc *http.Client) *Basket {
	return &Basket{base: newBase(baseURL, hc)}
}

func (c *Basket) GetBasket(ctx context.Context, userName string) (ShoppingCart, error) {
	var res struct {
		Cart ShoppingCart `json:"cart"`
	}
	if err := c.do(ctx, http.MethodGet, "/basket/"+url.PathEscape(userName), nil, &res); err != nil {
		return ShoppingCart{}, err
	}
	return res.Cart, nil
}

// LoadUserBasket returns the stored basket of userName, or an empty one when
// the user has none yet.
func (c *Basket) LoadUserBasket(ctx context.Context, userName string) (ShoppingCart, error) {
	cart, err := c.GetBasket(ctx, userName)
	if errors.Is(err, ErrNotFound) {
		return ShoppingCart{UserName: userName, Items: []CartItem{}}, nil
	}
	return cart, err
}

func (c *Basket) StoreBasket(ctx context.Context, cart ShoppingCart) error {
	in := struct {
		Cart ShoppingCart `json:"cart"`
	}{Cart: cart}
	return c.do(ctx, http.MethodPost, "/basket", in, nil)
}

func (c *Basket) DeleteBasket(ctx context.Context, userName string) error {
	return c.do(ctx, http.MethodDelete, "/basket/"+url.PathEscape(userName), nil, nil)
}

func (c *Basket) CheckoutBasket(ctx context.Context, checkout BasketCheckout) error {
	in := struct {
		BasketCheckout BasketCheckout `json:"basketCheckout"`
	}{BasketCheckout: checkout}
	return c.do(ctx, http.MethodPost, "/basket/checkout", in, nil)
}
