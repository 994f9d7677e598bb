package port

import (
	"context"

	"github.com/nikolayk812/eshop/internal/discount/domain"
)

type CouponStore interface {
	GetCoupon(ctx context.Context, productName string) (domain.Coupon, error)
	CreateCoupon(ctx context.Context, coupon domain.Coupon) (domain.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon domain.Coupon) (domain.Coupon, error)
	DeleteCoupon(ctx context.Context, productName string) error
}
