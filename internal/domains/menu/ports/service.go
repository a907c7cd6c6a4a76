package ports

import (
	"context"

	"github.com/cheezenes/pos-api/internal/domains/menu/application/types"
	"github.com/cheezenes/pos-api/internal/domains/menu/domain"
)

// Service exposes the menu catalog use cases to adapters.
type Service interface {
	Add(ctx context.Context, input types.ItemInput) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
	Get(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, id int64, input types.ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
}
