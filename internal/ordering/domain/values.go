package domain

import (
	"strings"
	"unicode/utf8"
)

const maxCVVLength = 3

type OrderName struct{ value string }

func OrderNameOf(v string) (OrderName, error) {
	if strings.TrimSpace(v) == "" {
		return OrderName{}, domainErr("OrderName can't be empty.")
	}
	return OrderName{value: v}, nil
}

func (n OrderName) String() string { return n.value }

type Address struct {
	FirstName    string
	LastName     string
	EmailAddress string
	AddressLine  string
	Country      string
	State        string
	ZipCode      string
}

// AddressOf checks the fields the shipping carrier cannot do without.
func AddressOf(a Address) (Address, error) {
	if strings.TrimSpace(a.EmailAddress) == "" {
		return Address{}, domainErr("EmailAddress can't be empty.")
	}
	if strings.TrimSpace(a.AddressLine) == "" {
		return Address{}, domainErr("AddressLine can't be empty.")
	}
	return a, nil
}

type Payment struct {
	CardName      string
	CardNumber    string
	Expiration    string
	CVV           string
	PaymentMethod int
}

func PaymentOf(p Payment) (Payment, error) {
	if strings.TrimSpace(p.CardName) == "" {
		return Payment{}, domainErr("CardName can't be empty.")
	}
	if strings.TrimSpace(p.CardNumber) == "" {
		return Payment{}, domainErr("CardNumber can't be empty.")
	}
	if utf8.RuneCountInString(p.CVV) > maxCVVLength {
		return Payment{}, domainErr("CVV can't be longer than 3 characters.")
	}
	return p, nil
}
