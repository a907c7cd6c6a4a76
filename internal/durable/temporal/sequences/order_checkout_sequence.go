// Package sequences composes the ordered activity runs behind durable workflows.
package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	ordertypes "github.com/cheezenes/pos-api/internal/domains/orders/application/types"
	orderactivities "github.com/cheezenes/pos-api/internal/platform/temporal/activities/orders"
)

// RunOrderCheckoutSequence executes the ordered set of activities needed to
// persist an order and notify the kitchen display.
func RunOrderCheckoutSequence(ctx workflow.Context, input ordertypes.CheckoutInput) (*ordertypes.CheckoutResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order checkout sequence started", "orderType", input.OrderType)
	persistOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
			// Invalid carts and conflicting replays never succeed on retry.
			NonRetryableErrorTypes: []string{
				orderactivities.ErrTypeInvalidInput,
				orderactivities.ErrTypeIdempotencyConflict,
			},
		},
	}
	notifyOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    3,
		},
	}

	var result ordertypes.CheckoutResult
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, persistOptions), orderactivities.PersistOrderActivityName, input).Get(ctx, &result)
	if err != nil {
		logger.Error("order checkout sequence failed", "error", err)
		return nil, err
	}
	logger.Info("order checkout sequence persisted", "orderNumber", result.OrderNumber)

	// Kitchen delivery is best effort with its own retry policy; a dead
	// display never voids a completed checkout.
	if err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, notifyOptions), orderactivities.NotifyKitchenActivityName, result.OrderID).Get(ctx, nil); err != nil {
		logger.Warn("order checkout sequence kitchen notify failed", "orderNumber", result.OrderNumber, "error", err)
	}
	return &result, nil
}
