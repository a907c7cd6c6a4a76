// Package memory provides in-memory menu persistence for development and tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/cheezenes/pos-api/internal/domains/menu/domain"
	"github.com/cheezenes/pos-api/internal/domains/menu/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory menu persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	items  map[int64]*domain.Item
	nextID int64
	now    func() time.Time
}

func NewRepository() *Repository {
	return &Repository{items: map[int64]*domain.Item{}, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

func (r *Repository) Save(_ context.Context, item *domain.Item) (*domain.Item, error) {
	if item == nil {
		return nil, errors.New("menu item is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *item
	now := r.now()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
		clone.CreatedAt = now
	} else {
		existing, ok := r.items[clone.ID]
		if !ok {
			return nil, ports.ErrNotFound
		}
		clone.CreatedAt = existing.CreatedAt
	}
	clone.UpdatedAt = now
	r.items[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Item, 0, len(r.items))
	for _, item := range r.items {
		clone := *item
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Category == list[j].Category {
			return list[i].Name < list[j].Name
		}
		return list[i].Category < list[j].Category
	})
	return list, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
