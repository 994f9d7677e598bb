package grpc

import (
	"context"

	gogrpc "google.golang.org/grpc"
)

const (
	ServiceName = "discount.DiscountProtoService"

	GetDiscountFullMethod    = "/" + ServiceName + "/GetDiscount"
	CreateDiscountFullMethod = "/" + ServiceName + "/CreateDiscount"
	UpdateDiscountFullMethod = "/" + ServiceName + "/UpdateDiscount"
	DeleteDiscountFullMethod = "/" + ServiceName + "/DeleteDiscount"
)

// DiscountServer is the server API for the discount service.
type DiscountServer interface {
	GetDiscount(context.Context, *GetDiscountRequest) (*CouponModel, error)
	CreateDiscount(context.Context, *CreateDiscountRequest) (*CouponModel, error)
	UpdateDiscount(context.Context, *UpdateDiscountRequest) (*CouponModel, error)
	DeleteDiscount(context.Context, *DeleteDiscountRequest) (*DeleteDiscountResponse, error)
}

func RegisterDiscountServer(s gogrpc.ServiceRegistrar, srv DiscountServer) {
	s.RegisterService(&DiscountServiceDesc, srv)
}

var DiscountServiceDesc = gogrpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DiscountServer)(nil),
	Methods: []gogrpc.MethodDesc{
		{MethodName: "GetDiscount", Handler: getDiscountHandler},
		{MethodName: "CreateDiscount", Handler: createDiscountHandler},
		{MethodName: "UpdateDiscount", Handler: updateDiscountHandler},
		{MethodName: "DeleteDiscount", Handler: deleteDiscountHandler},
	},
	Streams:  []gogrpc.StreamDesc{},
	Metadata: "discount.proto",
}

func getDiscountHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(GetDiscountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscountServer).GetDiscount(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: GetDiscountFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiscountServer).GetDiscount(ctx, req.(*GetDiscountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func createDiscountHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateDiscountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscountServer).CreateDiscount(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: CreateDiscountFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiscountServer).CreateDiscount(ctx, req.(*CreateDiscountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func updateDiscountHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateDiscountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscountServer).UpdateDiscount(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: UpdateDiscountFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiscountServer).UpdateDiscount(ctx, req.(*UpdateDiscountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteDiscountHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteDiscountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscountServer).DeleteDiscount(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: DeleteDiscountFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiscountServer).DeleteDiscount(ctx, req.(*DeleteDiscountRequest))
	}
	return interceptor(ctx, in, info, handler)
}
