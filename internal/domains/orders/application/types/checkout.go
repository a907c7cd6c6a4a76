// Package types holds the input and output shapes of the orders use cases.
package types

import "time"

// CheckoutItem is one cart line as submitted by the till.
type CheckoutItem struct {
	MenuItemID int64
	Name       string
	Quantity   int
	UnitPrice  float64
}

// CheckoutInput carries everything needed to turn a cart into a persisted order.
type CheckoutInput struct {
	OrderType          string
	TableNumber        string
	Items              []CheckoutItem
	DiscountPercentage float64
	PaymentMethod      string
	CustomerName       string
	CustomerPhone      string
	// IdempotencyKey, when set, lets a retried checkout replay the original
	// result instead of creating a duplicate order.
	IdempotencyKey string
}

// CheckoutResult reports the persisted order's identifiers.
type CheckoutResult struct {
	OrderID     int64
	OrderNumber string
}

// OrderFilter narrows the order history listing. Zero values mean no constraint.
type OrderFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	PaymentMethod string
	CustomerName  string
}
