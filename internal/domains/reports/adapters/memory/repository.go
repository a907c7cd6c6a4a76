// Package memory aggregates orders held by the in-memory order repository.
package memory

import (
	"context"
	"sort"
	"time"

	ordermemory "github.com/cheezenes/pos-api/internal/domains/orders/adapters/memory"
	orderdomain "github.com/cheezenes/pos-api/internal/domains/orders/domain"
	"github.com/cheezenes/pos-api/internal/domains/reports/domain"
	"github.com/cheezenes/pos-api/internal/domains/reports/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository computes report aggregates by scanning the in-memory order store.
// Fine for development and tests; the PostgreSQL adapter pushes the same
// aggregation into SQL.
type Repository struct {
	orders   *ordermemory.Repository
	location *time.Location
}

// NewRepository wires the reporting reads against the order store. A nil
// location defaults to UTC.
func NewRepository(orders *ordermemory.Repository, location *time.Location) *Repository {
	if location == nil {
		location = time.UTC
	}
	return &Repository{orders: orders, location: location}
}

func (r *Repository) Summarize(_ context.Context, window domain.Window) (domain.Summary, error) {
	var summary domain.Summary
	for _, order := range r.matching(window) {
		summary.OrderCount++
		summary.TotalSales += order.TotalAmount
	}
	return summary, nil
}

func (r *Repository) TopItems(_ context.Context, window domain.Window, limit int) ([]domain.ItemSales, error) {
	byName := map[string]*domain.ItemSales{}
	names := []string{}
	for _, order := range r.matching(window) {
		for _, item := range order.Items {
			entry, ok := byName[item.Name]
			if !ok {
				entry = &domain.ItemSales{Name: item.Name}
				byName[item.Name] = entry
				names = append(names, item.Name)
			}
			entry.Quantity += int64(item.Quantity)
			entry.Revenue += item.Subtotal
		}
	}
	ranked := make([]domain.ItemSales, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, *byName[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Revenue > ranked[j].Revenue })
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (r *Repository) SalesByDay(_ context.Context, window domain.Window) ([]domain.DailySales, error) {
	byDate := map[string]*domain.DailySales{}
	dates := []string{}
	for _, order := range r.matching(window) {
		date := order.CreatedAt.In(r.location).Format("2006-01-02")
		entry, ok := byDate[date]
		if !ok {
			entry = &domain.DailySales{Date: date}
			byDate[date] = entry
			dates = append(dates, date)
		}
		entry.OrderCount++
		entry.TotalSales += order.TotalAmount
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	daily := make([]domain.DailySales, 0, len(dates))
	for _, date := range dates {
		daily = append(daily, *byDate[date])
	}
	return daily, nil
}

func (r *Repository) Totals(_ context.Context, window domain.Window) (domain.DashboardStats, error) {
	var stats domain.DashboardStats
	for _, order := range r.matching(window) {
		stats.Orders++
		stats.Subtotal += order.Subtotal
		stats.Discount += order.DiscountAmount
		stats.Sales += order.TotalAmount
	}
	return stats, nil
}

func (r *Repository) matching(window domain.Window) []*orderdomain.Order {
	all := r.orders.All()
	matches := make([]*orderdomain.Order, 0, len(all))
	for _, order := range all {
		if order.CreatedAt.Before(window.Start) || order.CreatedAt.After(window.End) {
			continue
		}
		matches = append(matches, order)
	}
	return matches
}
