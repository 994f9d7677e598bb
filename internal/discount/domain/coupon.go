package domain

import "errors"

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponExists   = errors.New("coupon already exists")
	ErrInvalidCoupon  = errors.New("invalid coupon")
)

const noDiscountName = "No Discount"

type Coupon struct {
	ID          int
	ProductName string
	Description string
	Amount      int
}

// NoDiscount is returned for products without a coupon.
func NoDiscount() Coupon {
	return Coupon{ProductName: noDiscountName, Description: "No Discount Desc"}
}
