// Package ports declares the boundaries of the menu bounded context.
package ports

import (
	"context"
	"errors"

	"github.com/cheezenes/pos-api/internal/domains/menu/domain"
)

// ErrNotFound indicates the menu item does not exist in the store.
var ErrNotFound = errors.New("menu item not found")

// Repository persists the menu catalog.
type Repository interface {
	// Save inserts the item when its ID is zero and fully replaces it otherwise.
	Save(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	// List returns the whole catalog ordered by category, then name.
	List(ctx context.Context) ([]*domain.Item, error)
	// Delete removes an item; unknown ids are ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
