package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type customerRecord struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"size:100;not null"`
	Email string    `gorm:"size:255;not null;uniqueIndex"`
}

func (customerRecord) TableName() string { return "customers" }

type productRecord struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name  string          `gorm:"size:100;not null"`
	Price decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

func (productRecord) TableName() string { return "products" }

type addressColumns struct {
	FirstName    string `gorm:"size:50"`
	LastName     string `gorm:"size:50"`
	EmailAddress string `gorm:"size:50;not null"`
	AddressLine  string `gorm:"size:180;not null"`
	Country      string `gorm:"size:50"`
	State        string `gorm:"size:50"`
	ZipCode      string `gorm:"size:10"`
}

type paymentColumns struct {
	CardName      string `gorm:"size:50;not null"`
	CardNumber    string `gorm:"size:24;not null"`
	Expiration    string `gorm:"size:10"`
	CVV           string `gorm:"column:cvv;size:3"`
	PaymentMethod int
}

type orderRecord struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID         `gorm:"type:uuid;not null;index"`
	OrderName       string            `gorm:"size:100;not null;index"`
	ShippingAddress addressColumns    `gorm:"embedded;embeddedPrefix:shipping_"`
	BillingAddress  addressColumns    `gorm:"embedded;embeddedPrefix:billing_"`
	Payment         paymentColumns    `gorm:"embedded;embeddedPrefix:payment_"`
	Status          string            `gorm:"size:20;not null;default:Draft"`
	TotalPrice      decimal.Decimal   `gorm:"type:numeric(18,2);not null"`
	Items           []orderItemRecord `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (orderRecord) TableName() string { return "orders" }

type orderItemRecord struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

func (orderItemRecord) TableName() string { return "order_items" }
