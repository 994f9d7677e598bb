package grpc

import (
	"fmt"
	"math"

	"github.com/nikolayk812/eshop/internal/discount/domain"
)

type GetDiscountRequest struct {
	ProductName string `json:"productName"`
}

type CouponModel struct {
	ID          int32  `json:"id"`
	ProductName string `json:"productName"`
	Description string `json:"description"`
	Amount      int32  `json:"amount"`
}

type CreateDiscountRequest struct {
	Coupon *CouponModel `json:"coupon"`
}

type UpdateDiscountRequest struct {
	Coupon *CouponModel `json:"coupon"`
}

type DeleteDiscountRequest struct {
	ProductName string `json:"productName"`
}

type DeleteDiscountResponse struct {
	Success bool `json:"success"`
}

// toModel fails instead of truncating values that do not fit the int32 wire fields.
func toModel(c domain.Coupon) (*CouponModel, error) {
	if !fitsInt32(c.ID) {
		return nil, fmt.Errorf("coupon id %d is out of int32 range", c.ID)
	}
	if !fitsInt32(c.Amount) {
		return nil, fmt.Errorf("coupon amount %d is out of int32 range", c.Amount)
	}

	return &CouponModel{
		ID:          int32(c.ID),
		ProductName: c.ProductName,
		Description: c.Description,
		Amount:      int32(c.Amount),
	}, nil
}

func fitsInt32(v int) bool {
	return int64(v) >= math.MinInt32 && int64(v) <= math.MaxInt32
}

func fromModel(m *CouponModel) domain.Coupon {
	return domain.Coupon{
		ID:          int(m.ID),
		ProductName: m.ProductName,
		Description: m.Description,
		Amount:      int(m.Amount),
	}
}
