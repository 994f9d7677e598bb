package domain

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrBasketNotFound = errors.New("basket not found")

// ShoppingCartItem.Price is the unit price after discount. OriginalPrice
// keeps the undiscounted unit price once the item has been stored; zero means
// Price has not been discounted yet.
type ShoppingCartItem struct {
	Quantity      int             `json:"quantity"`
	Color         string          `json:"color"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	ProductID     uuid.UUID       `json:"productId"`
	ProductName   string          `json:"productName"`
}

// ListPrice is the undiscounted unit price.
func (i ShoppingCartItem) ListPrice() decimal.Decimal {
	if i.OriginalPrice.IsZero() {
		return i.Price
	}
	return i.OriginalPrice
}

// ApplyDiscount derives Price from the list price, never going below zero.
// Applying it repeatedly with the same amount yields the same price.
func (i *ShoppingCartItem) ApplyDiscount(amount decimal.Decimal) {
	list := i.ListPrice()
	i.OriginalPrice = list
	i.Price = decimal.Max(list.Sub(amount), decimal.Zero)
}

// ShoppingCart is stored as provided; quantities and prices are not
// range checked here.
type ShoppingCart struct {
	UserName string             `json:"userName"`
	Items    []ShoppingCartItem `json:"items"`
}

func NewShoppingCart(userName string) ShoppingCart {
	return ShoppingCart{UserName: userName, Items: []ShoppingCartItem{}}
}

// TotalPrice is the sum of price times quantity over all items.
func (c ShoppingCart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

type cartJSON struct {
	UserName   string             `json:"userName"`
	Items      []ShoppingCartItem `json:"items"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
}

func (c ShoppingCart) MarshalJSON() ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []ShoppingCartItem{}
	}
	return json.Marshal(cartJSON{UserName: c.UserName, Items: items, TotalPrice: c.TotalPrice()})
}

// UnmarshalJSON accepts and drops totalPrice; it is always derived from items.
func (c *ShoppingCart) UnmarshalJSON(data []byte) error {
	var v cartJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	c.UserName = v.UserName
	c.Items = v.Items
	return nil
}
