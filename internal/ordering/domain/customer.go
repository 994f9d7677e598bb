package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID    CustomerID
	Name  string
	Email string
}

func NewCustomer(id CustomerID, name, email string) (Customer, error) {
	if strings.TrimSpace(name) == "" {
		return Customer{}, domainErr("Customer name can't be empty.")
	}
	if strings.TrimSpace(email) == "" {
		return Customer{}, domainErr("Customer email can't be empty.")
	}
	return Customer{ID: id, Name: name, Email: email}, nil
}

type Product struct {
	ID    ProductID
	Name  string
	Price decimal.Decimal
}

func NewProduct(id ProductID, name string, price decimal.Decimal) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, domainErr("Product name can't be empty.")
	}
	if !price.IsPositive() {
		return Product{}, domainErr("Product price must be greater than zero.")
	}
	return Product{ID: id, Name: name, Price: price}, nil
}
