package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	harryID = uuid.MustParse("9dbc33d1-2398-4b96-adc4-2752846e5b90")
	johnID  = uuid.MustParse("68a41639-2658-4839-a201-aa1968ae8e3e")

	iphoneID  = uuid.MustParse("5334c996-8457-4cf0-815c-ed2b77c4ff61")
	samsungID = uuid.MustParse("c67d6323-e8b1-4229-9778-0cc05257425e")
	sonyID    = uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	dellID    = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
)

type seedItem struct {
	productID uuid.UUID
	quantity  int
	price     string
}

type seedOrder struct {
	id         uuid.UUID
	customerID uuid.UUID
	name       string
	address    domain.Address
	payment    domain.Payment
	items      []seedItem
}

func initialCustomers() []customerRecord {
	return []customerRecord{
		{ID: harryID, Name: "harry", Email: "harry@gemail.com.br"},
		{ID: johnID, Name: "john", Email: "john@gemail.com.br"},
	}
}

// initialProducts mirrors the catalog entries the seeded orders refer to.
func initialProducts() []productRecord {
	return []productRecord{
		{ID: iphoneID, Name: "IPhone X", Price: decimal.RequireFromString("1000.00")},
		{ID: samsungID, Name: "Samsung Galaxy S21", Price: decimal.RequireFromString("1200.00")},
		{ID: sonyID, Name: "Sony WH-1000XM4", Price: decimal.RequireFromString("349.99")},
		{ID: dellID, Name: "Dell XPS 13", Price: decimal.RequireFromString("1299.99")},
	}
}

func initialOrders() []seedOrder {
	return []seedOrder{
		{
			id:         uuid.MustParse("a8f0e3a2-6f1c-4d7e-9a53-1f2b3c4d5e01"),
			customerID: harryID,
			name:       "ORD_1",
			address: domain.Address{
				FirstName:    "harry",
				LastName:     "potter",
				EmailAddress: "harry@gemail.com.br",
				AddressLine:  "Bahcelievler No:4",
				Country:      "Turkey",
				State:        "Istanbul",
				ZipCode:      "38050",
			},
			payment: domain.Payment{CardName: "harry", CardNumber: "5555555555554444", Expiration: "12/28", CVV: "355", PaymentMethod: 1},
			items: []seedItem{
				{productID: iphoneID, quantity: 2, price: "500"},
				{productID: samsungID, quantity: 1, price: "400"},
			},
		},
		{
			id:         uuid.MustParse("a8f0e3a2-6f1c-4d7e-9a53-1f2b3c4d5e02"),
			customerID: johnID,
			name:       "ORD_2",
			address: domain.Address{
				FirstName:    "john",
				LastName:     "doe",
				EmailAddress: "john@gemail.com.br",
				AddressLine:  "Broadway No:1",
				Country:      "England",
				State:        "Nottingham",
				ZipCode:      "08050",
			},
			payment: domain.Payment{CardName: "john", CardNumber: "8885555555554444", Expiration: "06/30", CVV: "222", PaymentMethod: 2},
			items: []seedItem{
				{productID: sonyID, quantity: 1, price: "650"},
				{productID: dellID, quantity: 2, price: "450"},
			},
		},
	}
}

// Seed inserts the initial customers and products when missing and the
// initial orders when the orders table is empty.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customers := initialCustomers()
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&customers).Error; err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}

		products := initialProducts()
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}

		var count int64
		if err := tx.Model(&orderRecord{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		if count > 0 {
			return nil
		}

		for _, so := range initialOrders() {
			order, err := so.build()
			if err != nil {
				return fmt.Errorf("seed order %s: %w", so.name, err)
			}
			rec := toRecord(order)
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("seed order %s: %w", so.name, err)
			}
		}

		return nil
	})
}

func (so seedOrder) build() (*domain.Order, error) {
	id, err := domain.OrderIDOf(so.id)
	if err != nil {
		return nil, err
	}
	customerID, err := domain.CustomerIDOf(so.customerID)
	if err != nil {
		return nil, err
	}
	name, err := domain.OrderNameOf(so.name)
	if err != nil {
		return nil, err
	}
	address, err := domain.AddressOf(so.address)
	if err != nil {
		return nil, err
	}
	payment, err := domain.PaymentOf(so.payment)
	if err != nil {
		return nil, err
	}

	order := domain.CreateOrder(id, customerID, name, address, address, payment)
	for _, item := range so.items {
		productID, err := domain.ProductIDOf(item.productID)
		if err != nil {
			return nil, err
		}
		if err := order.Add(productID, item.quantity, decimal.RequireFromString(item.price)); err != nil {
			return nil, err
		}
	}
	order.ClearDomainEvents()

	return order, nil
}
