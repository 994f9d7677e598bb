// Package adapter connects the basket to the services it depends on.
package adapter

import (
	"context"
	"fmt"

	"github.com/nikolayk812/eshop/internal/basket/port"
	discountgrpc "github.com/nikolayk812/eshop/internal/discount/grpc"
	"github.com/shopspring/decimal"
)

type Discount struct {
	client *discountgrpc.Client
}

var _ port.DiscountService = (*Discount)(nil)

func NewDiscount(client *discountgrpc.Client) *Discount {
	return &Discount{client: client}
}

func (d *Discount) GetDiscount(ctx context.Context, productName string) (decimal.Decimal, error) {
	coupon, err := d.client.GetDiscount(ctx, &discountgrpc.GetDiscountRequest{ProductName: productName})
	if err != nil {
		return decimal.Zero, fmt.Errorf("client.GetDiscount[%s]: %w", productName, err)
	}

	return decimal.NewFromInt32(coupon.Amount), nil
}
