// Package application orchestrates the orders bounded context use cases.
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	types "github.com/cheezenes/pos-api/internal/domains/orders/application/types"
	"github.com/cheezenes/pos-api/internal/domains/orders/domain"
	"github.com/cheezenes/pos-api/internal/domains/orders/ports"
)

// maxNumberAttempts bounds how often checkout recomputes the order number when
// a concurrent writer claims it first.
const maxNumberAttempts = 3

// Service orchestrates the order lifecycle use cases.
type Service struct {
	repo         ports.Repository
	idemStore    ports.IdempotencyStore
	kitchen      ports.KitchenNotifier
	storeTimeout time.Duration
}

// Option customizes optional service collaborators.
type Option func(*Service)

// WithIdempotencyStore enables checkout replay for retried requests.
func WithIdempotencyStore(store ports.IdempotencyStore) Option {
	return func(s *Service) { s.idemStore = store }
}

// WithKitchenNotifier enables best-effort kitchen display notifications.
func WithKitchenNotifier(notifier ports.KitchenNotifier) Option {
	return func(s *Service) { s.kitchen = notifier }
}

// WithStoreTimeout bounds every repository call; zero disables the bound.
func WithStoreTimeout(timeout time.Duration) Option {
	return func(s *Service) { s.storeTimeout = timeout }
}

// NewService wires the orders service with its dependencies.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Checkout validates the cart, prices it server side, assigns the next order
// number and persists the aggregate. Client-supplied amounts are never trusted;
// every total is recomputed from quantities and unit prices.
func (s *Service) Checkout(ctx context.Context, input types.CheckoutInput) (*types.CheckoutResult, error) {
	idemKey := strings.TrimSpace(input.IdempotencyKey)
	var requestHash string
	if idemKey != "" && s.idemStore != nil {
		hash, err := FingerprintCheckout(input)
		if err != nil {
			return nil, err
		}
		requestHash = hash
		existing, err := s.idemGet(ctx, idemKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if existing.RequestHash != requestHash {
				return nil, fmt.Errorf("%w: key %q reused with a different payload", ports.ErrIdempotencyConflict, idemKey)
			}
			return &types.CheckoutResult{OrderID: existing.OrderID, OrderNumber: existing.OrderNumber}, nil
		}
	}

	items := make([]domain.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, domain.LineItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}
	discount := domain.ClampDiscount(input.DiscountPercentage)
	order, err := domain.NewOrder(
		domain.Type(input.OrderType),
		input.TableNumber,
		items,
		discount,
		input.PaymentMethod,
		input.CustomerName,
		input.CustomerPhone,
	)
	if err != nil {
		return nil, mapError(err)
	}

	saved, err := s.persistWithFreshNumber(ctx, order)
	if err != nil {
		return nil, err
	}

	result := &types.CheckoutResult{OrderID: saved.ID, OrderNumber: saved.Number}
	if idemKey != "" && s.idemStore != nil {
		stored, err := s.idemSave(ctx, ports.IdempotencyRecord{
			Key:         idemKey,
			RequestHash: requestHash,
			OrderID:     saved.ID,
			OrderNumber: saved.Number,
		})
		if err != nil {
			if errors.Is(err, ports.ErrIdempotencyConflict) {
				return nil, err
			}
			// The order is already committed; a failed bookkeeping write must
			// not make the checkout look failed.
		} else if stored != nil && stored.OrderID != saved.ID {
			// A concurrent retry with the same key won the race. Report the
			// winning order so every caller sees the same receipt.
			result = &types.CheckoutResult{OrderID: stored.OrderID, OrderNumber: stored.OrderNumber}
		}
	}

	if s.kitchen != nil {
		// Best effort only. The kitchen display being offline never voids a sale.
		_ = s.kitchen.NotifyOrder(ctx, saved)
	}
	return result, nil
}

// persistWithFreshNumber recomputes the order number and retries when a
// concurrent checkout claims the same one.
func (s *Service) persistWithFreshNumber(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var lastErr error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		maxSeq, err := s.maxSequence(ctx)
		if err != nil {
			return nil, err
		}
		order.AssignNumber(domain.NextNumber(maxSeq))
		saved, err := s.create(ctx, order)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, ports.ErrDuplicateNumber) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// List returns the order history matching the filter, newest first, capped at
// one page.
func (s *Service) List(ctx context.Context, filter types.OrderFilter) ([]*domain.Order, error) {
	opCtx, cancel := s.storeContext(ctx)
	defer cancel()
	orders, err := s.repo.Find(opCtx, ports.Filter{
		StartDate:     filter.StartDate,
		EndDate:       filter.EndDate,
		PaymentMethod: filter.PaymentMethod,
		CustomerName:  filter.CustomerName,
		Limit:         ports.DefaultPageSize,
	})
	if err != nil {
		return nil, s.mapStoreError(err)
	}
	return orders, nil
}

// Get loads a single order including its line items.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	opCtx, cancel := s.storeContext(ctx)
	defer cancel()
	order, err := s.repo.GetByID(opCtx, id)
	if err != nil {
		return nil, s.mapStoreError(err)
	}
	return order, nil
}

// Delete removes an order and its line items.
func (s *Service) Delete(ctx context.Context, id int64) error {
	opCtx, cancel := s.storeContext(ctx)
	defer cancel()
	if err := s.repo.Delete(opCtx, id); err != nil {
		return s.mapStoreError(err)
	}
	return nil
}

func (s *Service) create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	opCtx, cancel := s.storeContext(ctx)
	defer cancel()
	saved, err := s.repo.Create(opCtx, order)
	if err != nil {
		return nil, s.mapStoreError(err)
	}
	return saved, nil
}

func (s *Service) maxSequence(ctx context.Context) (int64, error) {
	opCtx, cancel := s.storeContext(ctx)
	defer cancel()
	maxSeq, err := s.repo.MaxSequence(opCtx)
	if err != nil {
		return 0, s.mapStoreError(err)
	}
	return maxSeq, nil
}

func (s *Service) idemGet(ctx context.Context, key string) (*ports.IdempotencyRecord, error) {
	opCtx, cancel := s.storeContext(ctx)
	defer cancel()
	record, err := s.idemStore.Get(opCtx, key)
	if err != nil {
		return nil, s.mapStoreError(err)
	}
	return record, nil
}

func (s *Service) idemSave(ctx context.Context, record ports.IdempotencyRecord) (*ports.IdempotencyRecord, error) {
	opCtx, cancel := s.storeContext(ctx)
	defer cancel()
	stored, err := s.idemStore.Save(opCtx, record)
	if err != nil && !errors.Is(err, ports.ErrIdempotencyConflict) {
		return stored, s.mapStoreError(err)
	}
	return stored, err
}

func (s *Service) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

func (s *Service) mapStoreError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ports.ErrStorageUnavailable, err)
	}
	return err
}

var _ ports.Service = (*Service)(nil)
