package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/nikolayk812/eshop/internal/platform/apperr"
	"github.com/stretchr/testify/assert"
)

func TestStatusAndTitle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "not found",
			err:        apperr.NotFound("Basket", "testuser"),
			wantStatus: http.StatusNotFound,
			wantTitle:  "NotFoundError",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("repo.GetBasket: %w", apperr.NotFound("Basket", "testuser")),
			wantStatus: http.StatusNotFound,
			wantTitle:  "NotFoundError",
		},
		{
			name:       "bad request",
			err:        apperr.BadRequest("id is not a valid uuid"),
			wantStatus: http.StatusBadRequest,
			wantTitle:  "BadRequestError",
		},
		{
			name:       "validation",
			err:        &apperr.ValidationError{Errors: []apperr.FieldError{{Field: "Name", Message: "Name is required"}}},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "ValidationError",
		},
		{
			name:       "internal server",
			err:        &apperr.InternalServerError{Message: "boom"},
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "InternalServerError",
		},
		{
			name:       "unknown",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "InternalError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, apperr.StatusOf(tt.err))
			assert.Equal(t, tt.wantTitle, apperr.Title(tt.err))
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := apperr.NotFound("Basket", "testuser")
	assert.EqualError(t, err, `Entity "Basket" (testuser) was not found.`)
}

func TestValidationMessage(t *testing.T) {
	assert.EqualError(t, &apperr.ValidationError{}, "validation failed")

	err := &apperr.ValidationError{Errors: []apperr.FieldError{
		{Field: "Name", Message: "Name is required"},
		{Field: "Price", Message: "Price must be greater than 0"},
	}}
	assert.EqualError(t, err, "Name is required")
}
