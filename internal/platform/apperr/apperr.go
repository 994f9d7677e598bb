// Package apperr defines the error types that cross service boundaries
// and the HTTP status each of them maps to.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type NotFoundError struct {
	Name string
	Key  any
}

func NotFound(name string, key any) *NotFoundError {
	return &NotFoundError{Name: name, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Entity %q (%v) was not found.", e.Name, e.Key)
}

type BadRequestError struct {
	Message string
	Details string
}

func BadRequest(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

func (e *BadRequestError) Error() string {
	return e.Message
}

type InternalServerError struct {
	Message string
	Details string
}

func (e *InternalServerError) Error() string {
	return e.Message
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return e.Errors[0].Message
}

// Title names the error type the way problem details report it.
func Title(err error) string {
	var (
		notFound   *NotFoundError
		badRequest *BadRequestError
		internal   *InternalServerError
		validation *ValidationError
	)
	switch {
	case errors.As(err, &validation):
		return "ValidationError"
	case errors.As(err, &badRequest):
		return "BadRequestError"
	case errors.As(err, &notFound):
		return "NotFoundError"
	case errors.As(err, &internal):
		return "InternalServerError"
	default:
		return "InternalError"
	}
}

func StatusOf(err error) int {
	var (
		notFound   *NotFoundError
		badRequest *BadRequestError
		validation *ValidationError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
