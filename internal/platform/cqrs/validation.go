package cqrs

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/shopspring/decimal"
)

// NewValidator returns a validator that understands decimal amounts.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		f, _ := d.Float64()
		return f
	}, decimal.Decimal{})
	return v
}

// ValidationBehavior rejects invalid commands before they reach their handler.
// Queries pass through untouched.
func ValidationBehavior(v *validator.Validate) Behavior {
	return func(ctx context.Context, req any, next Next) (any, error) {
		if _, ok := req.(Command); !ok {
			return next(ctx)
		}

		var failures []apperr.FieldError

		if err := v.StructCtx(ctx, req); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return nil, fmt.Errorf("v.StructCtx: %w", err)
			}
			failures = append(failures, FieldErrors(verrs)...)
		}

		if custom, ok := req.(interface{ Validate() error }); ok {
			if err := custom.Validate(); err != nil {
				var verr *apperr.ValidationError
				if errors.As(err, &verr) {
					failures = append(failures, verr.Errors...)
				} else {
					failures = append(failures, apperr.FieldError{Message: err.Error()})
				}
			}
		}

		if len(failures) > 0 {
			return nil, &apperr.ValidationError{Errors: failures}
		}

		return next(ctx)
	}
}

// FieldErrors describes validator failures the way ValidationBehavior
// reports them.
func FieldErrors(verrs validator.ValidationErrors) []apperr.FieldError {
	out := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apperr.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()

	collection := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map
	text := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "min":
		switch {
		case collection && param == "1":
			return field + " is required"
		case collection:
			return fmt.Sprintf("%s must contain at least %s items", field, param)
		case text:
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		switch {
		case collection:
			return fmt.Sprintf("%s must contain at most %s items", field, param)
		case text:
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "len":
		return fmt.Sprintf("%s must be %s characters long", field, param)
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	default:
		return field + " is invalid"
	}
}
