package ports

import (
	"context"

	"github.com/cheezenes/pos-api/internal/domains/orders/domain"
)

// KitchenNotifier pushes a freshly persisted order to the kitchen display.
// Delivery is best effort: checkout never fails because the kitchen is offline.
type KitchenNotifier interface {
	NotifyOrder(ctx context.Context, order *domain.Order) error
}
