// Package orders defines the durable checkout workflow.
package orders

import (
	"go.temporal.io/sdk/workflow"

	ordertypes "github.com/cheezenes/pos-api/internal/domains/orders/application/types"
	"github.com/cheezenes/pos-api/internal/durable/temporal/sequences"
)

const (
	// CheckoutWorkflowName is the public identifier for registering the workflow.
	CheckoutWorkflowName = "orders.workflows.Checkout"
	// CheckoutTaskQueue is the queue consumed by the worker processing order workflows.
	CheckoutTaskQueue = "ORDER_CHECKOUT"
)

// CheckoutWorkflowInput captures the payload required to ring up an order.
type CheckoutWorkflowInput struct {
	Command ordertypes.CheckoutInput
	TraceID string
}

// CheckoutWorkflow orchestrates the activities needed to persist an order and
// push it to the kitchen.
func CheckoutWorkflow(ctx workflow.Context, input CheckoutWorkflowInput) (*ordertypes.CheckoutResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("CheckoutWorkflow started", withTraceID(input.TraceID, "orderType", input.Command.OrderType)...)
	result, err := sequences.RunOrderCheckoutSequence(ctx, input.Command)
	if err != nil {
		logger.Error("CheckoutWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return nil, err
	}
	if result != nil {
		logger.Info("CheckoutWorkflow completed", withTraceID(input.TraceID, "orderNumber", result.OrderNumber)...)
	} else {
		logger.Info("CheckoutWorkflow completed", withTraceID(input.TraceID)...)
	}
	return result, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
