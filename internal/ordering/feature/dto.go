package feature

import (
	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/shopspring/decimal"
)

type AddressDto struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	AddressLine  string `json:"addressLine"`
	Country      string `json:"country"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

type PaymentDto struct {
	CardName      string `json:"cardName"`
	CardNumber    string `json:"cardNumber"`
	Expiration    string `json:"expiration"`
	CVV           string `json:"cvv"`
	PaymentMethod int    `json:"paymentMethod"`
}

type OrderItemDto struct {
	OrderID   uuid.UUID       `json:"orderId"`
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderDto struct {
	ID              uuid.UUID          `json:"id"`
	CustomerID      uuid.UUID          `json:"customerId" validate:"required"`
	OrderName       string             `json:"orderName" validate:"required"`
	ShippingAddress AddressDto         `json:"shippingAddress"`
	BillingAddress  AddressDto         `json:"billingAddress"`
	Payment         PaymentDto         `json:"payment"`
	Status          domain.OrderStatus `json:"status"`
	OrderItems      []OrderItemDto     `json:"orderItems"`
	TotalPrice      decimal.Decimal    `json:"totalPrice"`
}

func toOrderDto(o *domain.Order) OrderDto {
	items := o.Items()
	dto := OrderDto{
		ID:              o.ID.UUID(),
		CustomerID:      o.CustomerID.UUID(),
		OrderName:       o.OrderName.String(),
		ShippingAddress: toAddressDto(o.ShippingAddress),
		BillingAddress:  toAddressDto(o.BillingAddress),
		Payment: PaymentDto{
			CardName:      o.Payment.CardName,
			CardNumber:    o.Payment.CardNumber,
			Expiration:    o.Payment.Expiration,
			CVV:           o.Payment.CVV,
			PaymentMethod: o.Payment.PaymentMethod,
		},
		Status:     o.Status,
		OrderItems: make([]OrderItemDto, 0, len(items)),
		TotalPrice: o.TotalPrice(),
	}

	for _, item := range items {
		dto.OrderItems = append(dto.OrderItems, OrderItemDto{
			OrderID:   o.ID.UUID(),
			ProductID: item.ProductID.UUID(),
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return dto
}

func toOrderDtos(orders []*domain.Order) []OrderDto {
	out := make([]OrderDto, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDto(o))
	}
	return out
}

func toAddressDto(a domain.Address) AddressDto {
	return AddressDto{
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		EmailAddress: a.EmailAddress,
		AddressLine:  a.AddressLine,
		Country:      a.Country,
		State:        a.State,
		ZipCode:      a.ZipCode,
	}
}

func (a AddressDto) toDomain() (domain.Address, error) {
	return domain.AddressOf(domain.Address{
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		EmailAddress: a.EmailAddress,
		AddressLine:  a.AddressLine,
		Country:      a.Country,
		State:        a.State,
		ZipCode:      a.ZipCode,
	})
}

func (p PaymentDto) toDomain() (domain.Payment, error) {
	return domain.PaymentOf(domain.Payment{
		CardName:      p.CardName,
		CardNumber:    p.CardNumber,
		Expiration:    p.Expiration,
		CVV:           p.CVV,
		PaymentMethod: p.PaymentMethod,
	})
}

// orderValues holds the value objects shared by create and update.
type orderValues struct {
	name     domain.OrderName
	shipping domain.Address
	billing  domain.Address
	payment  domain.Payment
}

func (dto OrderDto) values() (orderValues, error) {
	var (
		v   orderValues
		err error
	)
	if v.name, err = domain.OrderNameOf(dto.OrderName); err != nil {
		return orderValues{}, err
	}
	if v.shipping, err = dto.ShippingAddress.toDomain(); err != nil {
		return orderValues{}, err
	}
	if v.billing, err = dto.BillingAddress.toDomain(); err != nil {
		return orderValues{}, err
	}
	if v.payment, err = dto.Payment.toDomain(); err != nil {
		return orderValues{}, err
	}
	return v, nil
}
