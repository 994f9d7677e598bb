package feature

import (
	"errors"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/ordering/domain"
	"github.com/nikolayk812/eshop/internal/platform/apperr"
)

func orderNotFound(id uuid.UUID) error {
	return apperr.NotFound("Order", id)
}

// asBadRequest turns a broken domain invariant into a client error.
func asBadRequest(err error) error {
	var derr *domain.DomainError
	if errors.As(err, &derr) {
		return apperr.BadRequest(derr.Message)
	}
	return err
}
