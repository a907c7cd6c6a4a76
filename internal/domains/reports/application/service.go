// Package application orchestrates the reporting use cases.
package application

import (
	"context"
	"math"
	"time"

	"github.com/cheezenes/pos-api/internal/domains/reports/domain"
	"github.com/cheezenes/pos-api/internal/domains/reports/ports"
)

// Service computes sales reports and dashboard snapshots. It holds no state
// beyond its collaborators; every call is a fresh read.
type Service struct {
	repo     ports.Repository
	location *time.Location
	now      func() time.Time
}

// Option customizes optional service collaborators.
type Option func(*Service)

// WithLocation sets the timezone used for calendar arithmetic and date
// bucketing. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithClock overrides the time source for deterministic testing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the reports service with its dependencies.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, location: time.UTC, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SalesReport aggregates orders in the period's window into a summary, the
// top-selling items and a daily breakdown.
func (s *Service) SalesReport(ctx context.Context, period string) (*domain.SalesReport, error) {
	p := domain.ParsePeriod(period)
	window := p.Resolve(s.now().In(s.location))

	summary, err := s.repo.Summarize(ctx, window)
	if err != nil {
		return nil, err
	}
	if summary.OrderCount > 0 {
		summary.AverageOrder = round2(summary.TotalSales / float64(summary.OrderCount))
	}

	topItems, err := s.repo.TopItems(ctx, window, ports.TopItemsLimit)
	if err != nil {
		return nil, err
	}
	daily, err := s.repo.SalesByDay(ctx, window)
	if err != nil {
		return nil, err
	}

	return &domain.SalesReport{
		Period:     p,
		Summary:    summary,
		TopItems:   topItems,
		DailySales: daily,
	}, nil
}

// DashboardStats returns today's order count, subtotal, discount and sales.
func (s *Service) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	window := domain.PeriodToday.Resolve(s.now().In(s.location))
	stats, err := s.repo.Totals(ctx, window)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var _ ports.Service = (*Service)(nil)
