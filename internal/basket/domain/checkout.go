package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BasketCheckout carries the buyer, shipping and payment details submitted
// at checkout. TotalPrice is overwritten from the stored cart.
type BasketCheckout struct {
	UserName   string          `json:"userName" validate:"required"`
	CustomerID uuid.UUID       `json:"customerId" validate:"required"`
	TotalPrice decimal.Decimal `json:"totalPrice"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	AddressLine  string `json:"addressLine" validate:"required"`
	Country      string `json:"country"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`

	CardName      string `json:"cardName" validate:"required"`
	CardNumber    string `json:"cardNumber" validate:"required"`
	Expiration    string `json:"expiration"`
	CVV           string `json:"cvv" validate:"max=3"`
	PaymentMethod int    `json:"paymentMethod"`
}
