package application

import (
	"errors"
	"fmt"

	"github.com/cheezenes/pos-api/internal/domains/orders/domain"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid order input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyCart) ||
		errors.Is(err, domain.ErrInvalidType) ||
		errors.Is(err, domain.ErrMissingTable) ||
		errors.Is(err, domain.ErrMissingPayment) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInvalidUnitPrice) ||
		errors.Is(err, domain.ErrEmptyItemName) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
