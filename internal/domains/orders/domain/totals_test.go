package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotals(t *testing.T) {
	lines := []LineAmount{
		{UnitPrice: 500, Quantity: 2},
		{UnitPrice: 150, Quantity: 1},
	}

	totals := CalculateTotals(lines, 10)
	assert.InDelta(t, 1150, totals.Subtotal, 1e-9)
	assert.InDelta(t, 115, totals.DiscountAmount, 1e-9)
	assert.InDelta(t, 1035, totals.GrandTotal, 1e-9)
}

func TestCalculateTotals_DiscountIdentity(t *testing.T) {
	lines := []LineAmount{
		{UnitPrice: 333.33, Quantity: 3},
		{UnitPrice: 49.5, Quantity: 2},
	}

	for _, d := range []float64{0, 5, 12.5, 50, 100} {
		totals := CalculateTotals(lines, d)
		assert.InDelta(t, totals.Subtotal-totals.DiscountAmount, totals.GrandTotal, 1e-9)
		assert.InDelta(t, totals.Subtotal*d/100, totals.DiscountAmount, 1e-9)
	}
}

func TestCalculateTotals_ZeroDiscount(t *testing.T) {
	lines := []LineAmount{{UnitPrice: 200, Quantity: 3}}

	totals := CalculateTotals(lines, 0)
	assert.Equal(t, totals.Subtotal, totals.GrandTotal)
	assert.Zero(t, totals.DiscountAmount)
}

func TestCalculateTotals_EmptyCart(t *testing.T) {
	totals := CalculateTotals(nil, 25)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.DiscountAmount)
	assert.Zero(t, totals.GrandTotal)
}

func TestClampDiscount(t *testing.T) {
	assert.Equal(t, 0.0, ClampDiscount(-5))
	assert.Equal(t, 100.0, ClampDiscount(250))
	assert.Equal(t, 42.5, ClampDiscount(42.5))
}

func TestNewOrder_FloorsGrandTotal(t *testing.T) {
	items := []LineItem{{MenuItemID: 1, Name: "Burger", Quantity: 1, UnitPrice: 500}}

	order, err := NewOrder(TypeTakeaway, "", items, 12.5, "cash", "", "")
	require.NoError(t, err)

	assert.InDelta(t, 500, order.Subtotal, 1e-9)
	assert.InDelta(t, 62.5, order.DiscountAmount, 1e-9)
	assert.Equal(t, 437.0, order.TotalAmount)
	assert.Equal(t, order.TotalAmount, math.Floor(order.TotalAmount))
}
