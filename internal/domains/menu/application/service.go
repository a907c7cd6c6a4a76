// Package application orchestrates the menu bounded context use cases.
package application

import (
	"context"

	"github.com/cheezenes/pos-api/internal/domains/menu/application/types"
	"github.com/cheezenes/pos-api/internal/domains/menu/domain"
	"github.com/cheezenes/pos-api/internal/domains/menu/ports"
)

// Service orchestrates the menu catalog use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the menu service with its dependencies.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Add creates a new menu item.
func (s *Service) Add(ctx context.Context, input types.ItemInput) (*domain.Item, error) {
	item, err := domain.NewItem(input.Name, input.Category, input.Description, input.Price, availableOrDefault(input.Available))
	if err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, item)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// List returns the catalog ordered by category, then name.
func (s *Service) List(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

// Get loads a single menu item.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return item, nil
}

// Update fully replaces an existing item's fields.
func (s *Service) Update(ctx context.Context, id int64, input types.ItemInput) (*domain.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if err := item.Replace(input.Name, input.Category, input.Description, input.Price, availableOrDefault(input.Available)); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, item)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// Delete removes a menu item. Existing orders keep their snapshots.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

func availableOrDefault(available *bool) bool {
	if available == nil {
		return true
	}
	return *available
}

var _ ports.Service = (*Service)(nil)
