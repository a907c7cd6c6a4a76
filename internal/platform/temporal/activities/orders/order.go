// Package orders groups Temporal activities for the orders bounded context.
package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	orderapp "github.com/cheezenes/pos-api/internal/domains/orders/application"
	ordertypes "github.com/cheezenes/pos-api/internal/domains/orders/application/types"
	orderports "github.com/cheezenes/pos-api/internal/domains/orders/ports"
)

const (
	// PersistOrderActivityName prices the cart and persists the order without side trips.
	PersistOrderActivityName = "orders.activities.PersistOrder"
	// NotifyKitchenActivityName pushes an existing order to the kitchen display.
	NotifyKitchenActivityName = "orders.activities.NotifyKitchen"

	// ErrTypeInvalidInput marks validation failures as non-retryable.
	ErrTypeInvalidInput = "InvalidOrderInput"
	// ErrTypeIdempotencyConflict marks key-reuse conflicts as non-retryable.
	ErrTypeIdempotencyConflict = "IdempotencyConflict"
)

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	checkoutService orderports.Service
	repo            orderports.Repository
	notifier        orderports.KitchenNotifier
}

// NewActivities wires the orders collaborators into the Temporal activities bundle.
// checkoutService should be constructed without a kitchen notifier to avoid duplicate pushes.
func NewActivities(checkoutService orderports.Service, repo orderports.Repository, notifier orderports.KitchenNotifier) *Activities {
	return &Activities{
		checkoutService: checkoutService,
		repo:            repo,
		notifier:        notifier,
	}
}

// PersistOrder prices the cart, assigns the next number and stores the order.
func (a *Activities) PersistOrder(ctx context.Context, input ordertypes.CheckoutInput) (*ordertypes.CheckoutResult, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.checkoutService == nil {
		logger.Error("order persist activity not initialized")
		return nil, errors.New("order persist activity not initialized")
	}
	logger.Info("PersistOrder activity started", "orderType", input.OrderType)
	result, err := a.checkoutService.Checkout(ctx, input)
	if err != nil {
		logger.Error("PersistOrder activity failed", "orderType", input.OrderType, "error", err)
		return nil, classifyCheckoutError(err)
	}
	logger.Info("PersistOrder activity completed", "orderNumber", result.OrderNumber)
	return result, nil
}

// NotifyKitchen loads an order and pushes it to the configured kitchen display.
func (a *Activities) NotifyKitchen(ctx context.Context, orderID int64) error {
	logger := activity.GetLogger(ctx)
	if a == nil {
		logger.Error("kitchen notify activity not initialized", "orderId", orderID)
		return errors.New("kitchen notify activity not initialized")
	}
	if a.notifier == nil {
		logger.Info("kitchen display not configured; skipping", "orderId", orderID)
		return nil
	}
	if a.repo == nil {
		logger.Error("order repository not configured for kitchen notify", "orderId", orderID)
		return errors.New("order repository not configured for kitchen notify")
	}

	var hb notifyHeartbeat
	if activity.HasHeartbeatDetails(ctx) {
		_ = activity.GetHeartbeatDetails(ctx, &hb)
	}
	if hb.Completed {
		logger.Info("NotifyKitchen already completed in prior attempt; skipping", "orderId", orderID)
		return nil
	}

	logger.Info("NotifyKitchen activity started", "orderId", orderID)
	order, err := a.repo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("NotifyKitchen failed to load order", "orderId", orderID, "error", err)
		return err
	}
	if err := a.notifier.NotifyOrder(ctx, order); err != nil {
		logger.Error("NotifyKitchen failed", "orderId", orderID, "error", err)
		return err
	}
	activity.RecordHeartbeat(ctx, notifyHeartbeat{Completed: true})
	logger.Info("NotifyKitchen activity completed", "orderId", orderID)
	return nil
}

// classifyCheckoutError tags terminal failures so the workflow retry policy
// can skip retries that can never succeed.
func classifyCheckoutError(err error) error {
	switch {
	case errors.Is(err, orderapp.ErrInvalidInput):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidInput, err)
	case errors.Is(err, orderports.ErrIdempotencyConflict):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeIdempotencyConflict, err)
	default:
		return err
	}
}

type notifyHeartbeat struct {
	Completed bool
}
