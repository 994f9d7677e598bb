package repository

import (
	"fmt"

	"github.com/nikolayk812/eshop/internal/ordering/domain"
)

func toRecord(o *domain.Order) orderRecord {
	items := o.Items()
	rec := orderRecord{
		ID:              o.ID.UUID(),
		CustomerID:      o.CustomerID.UUID(),
		OrderName:       o.OrderName.String(),
		ShippingAddress: addressToColumns(o.ShippingAddress),
		BillingAddress:  addressToColumns(o.BillingAddress),
		Payment: paymentColumns{
			CardName:      o.Payment.CardName,
			CardNumber:    o.Payment.CardNumber,
			Expiration:    o.Payment.Expiration,
			CVV:           o.Payment.CVV,
			PaymentMethod: o.Payment.PaymentMethod,
		},
		Status:     o.Status.String(),
		TotalPrice: o.TotalPrice(),
		Items:      make([]orderItemRecord, 0, len(items)),
	}

	for _, item := range items {
		rec.Items = append(rec.Items, orderItemRecord{
			ID:        item.ID.UUID(),
			OrderID:   rec.ID,
			ProductID: item.ProductID.UUID(),
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return rec
}

func addressToColumns(a domain.Address) addressColumns {
	return addressColumns{
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		EmailAddress: a.EmailAddress,
		AddressLine:  a.AddressLine,
		Country:      a.Country,
		State:        a.State,
		ZipCode:      a.ZipCode,
	}
}

func columnsToAddress(c addressColumns) domain.Address {
	return domain.Address{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		EmailAddress: c.EmailAddress,
		AddressLine:  c.AddressLine,
		Country:      c.Country,
		State:        c.State,
		ZipCode:      c.ZipCode,
	}
}

func toDomain(rec orderRecord) (*domain.Order, error) {
	id, err := domain.OrderIDOf(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("order id: %w", err)
	}
	customerID, err := domain.CustomerIDOf(rec.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("order[%s] customer id: %w", rec.ID, err)
	}
	name, err := domain.OrderNameOf(rec.OrderName)
	if err != nil {
		return nil, fmt.Errorf("order[%s] name: %w", rec.ID, err)
	}
	status, err := domain.ParseOrderStatus(rec.Status)
	if err != nil {
		return nil, fmt.Errorf("order[%s] status: %w", rec.ID, err)
	}

	items := make([]domain.OrderItem, 0, len(rec.Items))
	for _, ir := range rec.Items {
		itemID, err := domain.OrderItemIDOf(ir.ID)
		if err != nil {
			return nil, fmt.Errorf("order[%s] item id: %w", rec.ID, err)
		}
		productID, err := domain.ProductIDOf(ir.ProductID)
		if err != nil {
			return nil, fmt.Errorf("order[%s] product id: %w", rec.ID, err)
		}
		items = append(items, domain.OrderItem{
			ID:        itemID,
			OrderID:   id,
			ProductID: productID,
			Quantity:  ir.Quantity,
			Price:     ir.Price,
		})
	}

	payment := domain.Payment{
		CardName:      rec.Payment.CardName,
		CardNumber:    rec.Payment.CardNumber,
		Expiration:    rec.Payment.Expiration,
		CVV:           rec.Payment.CVV,
		PaymentMethod: rec.Payment.PaymentMethod,
	}

	return domain.RestoreOrder(id, customerID, name,
		columnsToAddress(rec.ShippingAddress), columnsToAddress(rec.BillingAddress),
		payment, status, items), nil
}

func toDomainList(recs []orderRecord) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0, len(recs))
	for _, rec := range recs {
		o, err := toDomain(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
