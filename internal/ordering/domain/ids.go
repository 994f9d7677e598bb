package domain

import "github.com/google/uuid"

type OrderID struct{ value uuid.UUID }

func OrderIDOf(v uuid.UUID) (OrderID, error) {
	if v == uuid.Nil {
		return OrderID{}, domainErr("OrderId can't be empty.")
	}
	return OrderID{value: v}, nil
}

func (id OrderID) UUID() uuid.UUID { return id.value }
func (id OrderID) String() string  { return id.value.String() }

type CustomerID struct{ value uuid.UUID }

func CustomerIDOf(v uuid.UUID) (CustomerID, error) {
	if v == uuid.Nil {
		return CustomerID{}, domainErr("CustomerId can't be empty.")
	}
	return CustomerID{value: v}, nil
}

func (id CustomerID) UUID() uuid.UUID { return id.value }
func (id CustomerID) String() string  { return id.value.String() }

type ProductID struct{ value uuid.UUID }

func ProductIDOf(v uuid.UUID) (ProductID, error) {
	if v == uuid.Nil {
		return ProductID{}, domainErr("ProductId can't be empty.")
	}
	return ProductID{value: v}, nil
}

func (id ProductID) UUID() uuid.UUID { return id.value }
func (id ProductID) String() string  { return id.value.String() }

type OrderItemID struct{ value uuid.UUID }

func OrderItemIDOf(v uuid.UUID) (OrderItemID, error) {
	if v == uuid.Nil {
		return OrderItemID{}, domainErr("OrderItemId can't be empty.")
	}
	return OrderItemID{value: v}, nil
}

func (id OrderItemID) UUID() uuid.UUID { return id.value }
func (id OrderItemID) String() string  { return id.value.String() }
