package ports

import (
	"context"
	"errors"
	"time"

	"github.com/cheezenes/pos-api/internal/domains/orders/domain"
)

var (
	// ErrNotFound indicates the order does not exist in the store.
	ErrNotFound = errors.New("order not found")
	// ErrStorageUnavailable indicates the store could not be reached or timed out.
	ErrStorageUnavailable = errors.New("order storage unavailable")
	// ErrDuplicateNumber indicates another writer claimed the order number first.
	ErrDuplicateNumber = errors.New("order number already taken")
	// ErrPartialWrite indicates the order header was persisted without its line
	// items. Only possible on backends without multi-record atomicity.
	ErrPartialWrite = errors.New("order persisted without its line items")
)

// Filter narrows an order history query. Nil/empty fields mean no constraint;
// provided predicates are combined as a conjunction.
type Filter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	PaymentMethod string
	// CustomerName is matched as a case-insensitive substring.
	CustomerName string
	// Limit caps the result size; values <= 0 fall back to DefaultPageSize.
	Limit int
}

// DefaultPageSize caps history queries the way the till UI pages them.
const DefaultPageSize = 100

// Repository persists orders and their line-item snapshots.
type Repository interface {
	// Create persists the order header and all line items as one logical write
	// and returns the stored aggregate with its assigned identifier and
	// creation timestamp. A taken order number surfaces ErrDuplicateNumber.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// GetByID loads an order including its line items.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// Find returns matching orders newest first, without line items.
	Find(ctx context.Context, filter Filter) ([]*domain.Order, error)
	// Delete removes the order and its line items; unknown ids are ErrNotFound.
	Delete(ctx context.Context, id int64) error
	// MaxSequence reports the highest numeric order-number suffix on record,
	// ignoring malformed numbers; zero when no order exists.
	MaxSequence(ctx context.Context) (int64, error)
	// DeleteCreatedBefore purges orders older than the cutoff and reports how
	// many were removed.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
