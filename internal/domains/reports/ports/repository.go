// Package ports declares the boundaries of the reports bounded context.
package ports

import (
	"context"

	"github.com/cheezenes/pos-api/internal/domains/reports/domain"
)

// TopItemsLimit caps the top-items ranking the way the reporting screen shows it.
const TopItemsLimit = 10

// Repository answers read-only aggregate queries over persisted orders.
// Implementations never mutate state and must be safe to run concurrently
// with checkouts.
type Repository interface {
	// Summarize returns the order count and total sales inside the window.
	// The average is left zero; the service derives it.
	Summarize(ctx context.Context, window domain.Window) (domain.Summary, error)
	// TopItems groups line items of matching orders by name, summing quantity
	// and line subtotal, descending by summed subtotal, capped at limit.
	TopItems(ctx context.Context, window domain.Window, limit int) ([]domain.ItemSales, error)
	// SalesByDay buckets matching orders by calendar date in the report
	// location, descending by date.
	SalesByDay(ctx context.Context, window domain.Window) ([]domain.DailySales, error)
	// Totals sums order count, subtotal, discount and total sales inside the
	// window. Backs the dashboard.
	Totals(ctx context.Context, window domain.Window) (domain.DashboardStats, error)
}
