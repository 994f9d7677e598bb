package cqrs

import (
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// NewDefault returns a mediator with the standard pipeline:
// tracing, validation, logging, handler.
func NewDefault(tracer trace.Tracer, log *zap.Logger) *Mediator {
	return New(
		TracingBehavior(tracer),
		ValidationBehavior(NewValidator()),
		LoggingBehavior(log, DefaultSlowThreshold),
	)
}
