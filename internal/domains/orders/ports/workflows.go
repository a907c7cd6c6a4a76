package ports

import (
	"context"

	"github.com/cheezenes/pos-api/internal/domains/orders/application/types"
)

// WorkflowOrchestrator exposes durable checkout execution to the transport layer.
type WorkflowOrchestrator interface {
	Checkout(ctx context.Context, input types.CheckoutInput) (*types.CheckoutResult, error)
}
