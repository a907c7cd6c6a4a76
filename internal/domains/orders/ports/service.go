package ports

import (
	"context"

	"github.com/cheezenes/pos-api/internal/domains/orders/application/types"
	"github.com/cheezenes/pos-api/internal/domains/orders/domain"
)

// Service exposes the order lifecycle use cases to adapters.
type Service interface {
	Checkout(ctx context.Context, input types.CheckoutInput) (*types.CheckoutResult, error)
	List(ctx context.Context, filter types.OrderFilter) ([]*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}
