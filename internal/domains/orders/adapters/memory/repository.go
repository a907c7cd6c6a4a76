// Package memory provides in-memory order persistence for development and tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cheezenes/pos-api/internal/domains/orders/domain"
	"github.com/cheezenes/pos-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu         sync.RWMutex
	orders     map[int64]*domain.Order
	nextID     int64
	nextItemID int64
	now        func() time.Time
}

func NewRepository() *Repository {
	return &Repository{orders: map[int64]*domain.Order{}, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

func (r *Repository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.Number == order.Number {
			return nil, ports.ErrDuplicateNumber
		}
	}

	clone := cloneOrder(order)
	r.nextID++
	clone.ID = r.nextID
	clone.CreatedAt = r.now()
	for i := range clone.Items {
		r.nextItemID++
		clone.Items[i].ID = r.nextItemID
	}
	r.orders[clone.ID] = clone
	return cloneOrder(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *Repository) Find(_ context.Context, filter ports.Filter) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if !matchesFilter(order, filter) {
			continue
		}
		clone := cloneOrder(order)
		clone.Items = nil
		matches = append(matches, clone)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].ID > matches[j].ID
		}
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = ports.DefaultPageSize
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

// Reset drops every stored order and rewinds the ID counters. Contract tests
// use it to restore a deterministic baseline between interactions.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = map[int64]*domain.Order{}
	r.nextID = 0
	r.nextItemID = 0
}

// All returns every stored order with its items, unsorted. Used by the
// in-memory reporting adapter; not part of the repository port.
func (r *Repository) All() []*domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, cloneOrder(order))
	}
	return list
}

func (r *Repository) MaxSequence(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var maxSeq int64
	for _, order := range r.orders {
		if seq, ok := domain.ParseNumber(order.Number); ok && seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq, nil
}

func (r *Repository) DeleteCreatedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, order := range r.orders {
		if order.CreatedAt.Before(cutoff) {
			delete(r.orders, id)
			removed++
		}
	}
	return removed, nil
}

func matchesFilter(order *domain.Order, filter ports.Filter) bool {
	if filter.StartDate != nil && order.CreatedAt.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && order.CreatedAt.After(*filter.EndDate) {
		return false
	}
	if filter.PaymentMethod != "" && order.PaymentMethod != filter.PaymentMethod {
		return false
	}
	if filter.CustomerName != "" &&
		!strings.Contains(strings.ToLower(order.CustomerName), strings.ToLower(filter.CustomerName)) {
		return false
	}
	return true
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	if order.Items != nil {
		clone.Items = make([]domain.LineItem, len(order.Items))
		copy(clone.Items, order.Items)
	}
	return &clone
}
