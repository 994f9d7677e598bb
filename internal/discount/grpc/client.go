package grpc

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is a typed client for discount.DiscountProtoService.
type Client struct {
	cc    gogrpc.ClientConnInterface
	close func() error
}

// Dial creates a client for target. Extra options are appended after the
// defaults, so callers may override the transport credentials.
func Dial(target string, opts ...gogrpc.DialOption) (*Client, error) {
	defaults := []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}

	conn, err := gogrpc.NewClient(target, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("grpc.NewClient %s: %w", target, err)
	}

	return &Client{cc: conn, close: conn.Close}, nil
}

// NewClient wraps an existing connection. The caller owns cc.
func NewClient(cc gogrpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Close() error {
	if c == nil || c.close == nil {
		return nil
	}
	return c.close()
}

func (c *Client) GetDiscount(ctx context.Context, in *GetDiscountRequest) (*CouponModel, error) {
	out := new(CouponModel)
	if err := c.cc.Invoke(ctx, GetDiscountFullMethod, in, out, gogrpc.CallContentSubtype(CodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDiscount(ctx context.Context, in *CreateDiscountRequest) (*CouponModel, error) {
	out := new(CouponModel)
	if err := c.cc.Invoke(ctx, CreateDiscountFullMethod, in, out, gogrpc.CallContentSubtype(CodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateDiscount(ctx context.Context, in *UpdateDiscountRequest) (*CouponModel, error) {
	out := new(CouponModel)
	if err := c.cc.Invoke(ctx, UpdateDiscountFullMethod, in, out, gogrpc.CallContentSubtype(CodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteDiscount(ctx context.Context, in *DeleteDiscountRequest) (*DeleteDiscountResponse, error) {
	out := new(DeleteDiscountResponse)
	if err := c.cc.Invoke(ctx, DeleteDiscountFullMethod, in, out, gogrpc.CallContentSubtype(CodecName)); err != nil {
		return nil, err
	}
	return out, nil
}
