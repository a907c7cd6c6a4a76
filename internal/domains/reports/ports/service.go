package ports

import (
	"context"

	"github.com/cheezenes/pos-api/internal/domains/reports/domain"
)

// Service exposes the reporting use cases to adapters.
type Service interface {
	SalesReport(ctx context.Context, period string) (*domain.SalesReport, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
