// Package mapper converts report aggregates to HTTP payloads.
package mapper

import reportsdomain "github.com/cheezenes/pos-api/internal/domains/reports/domain"

// Summary is the HTTP representation of a window summary.
type Summary struct {
	OrderCount   int64   `json:"orderCount"`
	TotalSales   float64 `json:"totalSales"`
	AverageOrder float64 `json:"averageOrder"`
}

// ItemSales is one ranked dish in the top-items listing.
type ItemSales struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// DailySales is one day's bucket in the daily breakdown.
type DailySales struct {
	Date       string  `json:"date"`
	OrderCount int64   `json:"orderCount"`
	TotalSales float64 `json:"totalSales"`
}

// SalesReport is the full reporting payload.
type SalesReport struct {
	Period     string       `json:"period"`
	Summary    Summary      `json:"summary"`
	TopItems   []ItemSales  `json:"topItems"`
	DailySales []DailySales `json:"dailySales"`
}

// TodayStats is the dashboard's snapshot of today's trade.
type TodayStats struct {
	Orders   int64   `json:"orders"`
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Sales    float64 `json:"sales"`
}

// DashboardStats wraps today's snapshot the way the landing screen expects it.
type DashboardStats struct {
	Today TodayStats `json:"today"`
}

// FromDomainReport converts a report to the transport representation.
func FromDomainReport(report *reportsdomain.SalesReport) SalesReport {
	if report == nil {
		return SalesReport{}
	}
	topItems := make([]ItemSales, 0, len(report.TopItems))
	for _, item := range report.TopItems {
		topItems = append(topItems, ItemSales{Name: item.Name, Quantity: item.Quantity, Revenue: item.Revenue})
	}
	daily := make([]DailySales, 0, len(report.DailySales))
	for _, day := range report.DailySales {
		daily = append(daily, DailySales{Date: day.Date, OrderCount: day.OrderCount, TotalSales: day.TotalSales})
	}
	return SalesReport{
		Period: string(report.Period),
		Summary: Summary{
			OrderCount:   report.Summary.OrderCount,
			TotalSales:   report.Summary.TotalSales,
			AverageOrder: report.Summary.AverageOrder,
		},
		TopItems:   topItems,
		DailySales: daily,
	}
}

// FromDomainDashboard converts dashboard stats to the transport representation.
func FromDomainDashboard(stats *reportsdomain.DashboardStats) DashboardStats {
	if stats == nil {
		return DashboardStats{}
	}
	return DashboardStats{Today: TodayStats{
		Orders:   stats.Orders,
		Subtotal: stats.Subtotal,
		Discount: stats.Discount,
		Sales:    stats.Sales,
	}}
}
