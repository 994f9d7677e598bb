package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/nikolayk812/eshop/internal/discount/domain"
	"github.com/nikolayk812/eshop/internal/discount/port"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service implements DiscountServer on top of a coupon store.
type Service struct {
	store port.CouponStore
	log   *zap.Logger
}

var _ DiscountServer = (*Service)(nil)

func NewService(store port.CouponStore, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

func (s *Service) GetDiscount(ctx context.Context, in *GetDiscountRequest) (*CouponModel, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get discount request is required")
	}

	name := strings.TrimSpace(in.ProductName)
	if name == "" {
		return s.reply(domain.NoDiscount())
	}

	coupon, err := s.store.GetCoupon(ctx, name)
	if errors.Is(err, domain.ErrCouponNotFound) {
		coupon = domain.NoDiscount()
	} else if err != nil {
		return nil, status.Errorf(codes.Internal, "get discount: %v", err)
	}

	s.log.Info("discount is retrieved",
		zap.String("productName", coupon.ProductName),
		zap.Int("amount", coupon.Amount))

	return s.reply(coupon)
}

func (s *Service) CreateDiscount(ctx context.Context, in *CreateDiscountRequest) (*CouponModel, error) {
	if in == nil || in.Coupon == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request object")
	}

	coupon := fromModel(in.Coupon)
	if strings.TrimSpace(coupon.ProductName) == "" {
		return nil, status.Error(codes.InvalidArgument, "product name is required")
	}

	created, err := s.store.CreateCoupon(ctx, coupon)
	switch {
	case errors.Is(err, domain.ErrCouponExists):
		return nil, status.Errorf(codes.AlreadyExists, "discount for %q already exists", coupon.ProductName)
	case errors.Is(err, domain.ErrInvalidCoupon):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case err != nil:
		return nil, status.Errorf(codes.Internal, "create discount: %v", err)
	}

	s.log.Info("discount is successfully created", zap.String("productName", created.ProductName))

	return s.reply(created)
}

func (s *Service) UpdateDiscount(ctx context.Context, in *UpdateDiscountRequest) (*CouponModel, error) {
	if in == nil || in.Coupon == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request object")
	}

	coupon := fromModel(in.Coupon)
	if coupon.ID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "coupon id is required")
	}
	if strings.TrimSpace(coupon.ProductName) == "" {
		return nil, status.Error(codes.InvalidArgument, "product name is required")
	}

	updated, err := s.store.UpdateCoupon(ctx, coupon)
	switch {
	case errors.Is(err, domain.ErrCouponNotFound):
		return nil, status.Errorf(codes.NotFound, "discount with id=%d is not found", coupon.ID)
	case errors.Is(err, domain.ErrCouponExists):
		return nil, status.Errorf(codes.AlreadyExists, "discount for %q already exists", coupon.ProductName)
	case errors.Is(err, domain.ErrInvalidCoupon):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case err != nil:
		return nil, status.Errorf(codes.Internal, "update discount: %v", err)
	}

	s.log.Info("discount is successfully updated", zap.String("productName", updated.ProductName))

	return s.reply(updated)
}

func (s *Service) reply(c domain.Coupon) (*CouponModel, error) {
	m, err := toModel(c)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return m, nil
}

func (s *Service) DeleteDiscount(ctx context.Context, in *DeleteDiscountRequest) (*DeleteDiscountResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "delete discount request is required")
	}

	err := s.store.DeleteCoupon(ctx, strings.TrimSpace(in.ProductName))
	if errors.Is(err, domain.ErrCouponNotFound) {
		return nil, status.Errorf(codes.NotFound, "discount with ProductName=%s is not found", in.ProductName)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "delete discount: %v", err)
	}

	s.log.Info("discount is successfully deleted", zap.String("productName", in.ProductName))

	return &DeleteDiscountResponse{Success: true}, nil
}
