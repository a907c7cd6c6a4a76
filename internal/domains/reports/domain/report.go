package domain

// Summary aggregates the orders inside a reporting window.
type Summary struct {
	OrderCount   int64
	TotalSales   float64
	AverageOrder float64
}

// ItemSales is one dish's aggregated contribution, grouped by the name
// snapshotted at checkout.
type ItemSales struct {
	Name     string
	Quantity int64
	Revenue  float64
}

// DailySales is one calendar day's order count and sales total. Date is
// formatted YYYY-MM-DD in the report location.
type DailySales struct {
	Date       string
	OrderCount int64
	TotalSales float64
}

// SalesReport bundles the three artifacts the reporting screen renders.
type SalesReport struct {
	Period     Period
	Summary    Summary
	TopItems   []ItemSales
	DailySales []DailySales
}

// DashboardStats is the landing-screen snapshot of today's trade.
type DashboardStats struct {
	Orders   int64
	Subtotal float64
	Discount float64
	Sales    float64
}
