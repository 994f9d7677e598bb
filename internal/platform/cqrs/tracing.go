package cqrs

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func TracingBehavior(tracer trace.Tracer) Behavior {
	return func(ctx context.Context, req any, next Next) (any, error) {
		ctx, span := tracer.Start(ctx, "cqrs "+Name(req),
			trace.WithAttributes(attribute.String("cqrs.kind", Kind(req))))
		defer span.End()

		resp, err := next(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		return resp, err
	}
}
