// Package postgres answers report aggregates with SQL over the orders schema.
package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cheezenes/pos-api/internal/domains/reports/domain"
	"github.com/cheezenes/pos-api/internal/domains/reports/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository runs read-only aggregate queries against the orders tables.
type Repository struct {
	db       *gorm.DB
	timezone string
}

// NewRepository wires a PostgreSQL-backed reporting read model. The location
// drives date bucketing; nil defaults to UTC.
func NewRepository(db *gorm.DB, location *time.Location) *Repository {
	if location == nil {
		location = time.UTC
	}
	return &Repository{db: db, timezone: location.String()}
}

func (r *Repository) Summarize(ctx context.Context, window domain.Window) (domain.Summary, error) {
	if err := r.ensureDB(); err != nil {
		return domain.Summary{}, err
	}
	var row struct {
		OrderCount int64
		TotalSales float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS order_count, COALESCE(SUM(total_amount), 0) AS total_sales
		FROM orders
		WHERE created_at BETWEEN ? AND ?`,
		window.Start, window.End,
	).Scan(&row).Error
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summary{OrderCount: row.OrderCount, TotalSales: row.TotalSales}, nil
}

func (r *Repository) TopItems(ctx context.Context, window domain.Window, limit int) ([]domain.ItemSales, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = ports.TopItemsLimit
	}
	var rows []struct {
		Name     string
		Quantity int64
		Revenue  float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.item_name AS name, SUM(i.quantity) AS quantity, SUM(i.subtotal) AS revenue
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.created_at BETWEEN ? AND ?
		GROUP BY i.item_name
		ORDER BY revenue DESC
		LIMIT ?`,
		window.Start, window.End, limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]domain.ItemSales, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ItemSales{Name: row.Name, Quantity: row.Quantity, Revenue: row.Revenue})
	}
	return items, nil
}

func (r *Repository) SalesByDay(ctx context.Context, window domain.Window) ([]domain.DailySales, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var rows []struct {
		Date       string
		OrderCount int64
		TotalSales float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(created_at AT TIME ZONE ?, 'YYYY-MM-DD') AS date,
		       COUNT(*) AS order_count,
		       COALESCE(SUM(total_amount), 0) AS total_sales
		FROM orders
		WHERE created_at BETWEEN ? AND ?
		GROUP BY date
		ORDER BY date DESC`,
		r.timezone, window.Start, window.End,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	daily := make([]domain.DailySales, 0, len(rows))
	for _, row := range rows {
		daily = append(daily, domain.DailySales{Date: row.Date, OrderCount: row.OrderCount, TotalSales: row.TotalSales})
	}
	return daily, nil
}

func (r *Repository) Totals(ctx context.Context, window domain.Window) (domain.DashboardStats, error) {
	if err := r.ensureDB(); err != nil {
		return domain.DashboardStats{}, err
	}
	var row struct {
		Orders   int64
		Subtotal float64
		Discount float64
		Sales    float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS orders,
		       COALESCE(SUM(subtotal), 0) AS subtotal,
		       COALESCE(SUM(discount_amount), 0) AS discount,
		       COALESCE(SUM(total_amount), 0) AS sales
		FROM orders
		WHERE created_at BETWEEN ? AND ?`,
		window.Start, window.End,
	).Scan(&row).Error
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return domain.DashboardStats{Orders: row.Orders, Subtotal: row.Subtotal, Discount: row.Discount, Sales: row.Sales}, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres reports repository not configured")
	}
	return nil
}
