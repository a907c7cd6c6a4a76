package domain

// LineAmount carries the pricing inputs of one cart line.
type LineAmount struct {
	UnitPrice float64
	Quantity  int
}

// Totals is the result of pricing a cart.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	GrandTotal     float64
}

// CalculateTotals prices a cart: subtotal is the sum of unit price times
// quantity, the discount is a percentage of the subtotal, and the grand total
// is the difference. The discount percentage is assumed to be within [0,100];
// callers clamp before invoking (see ClampDiscount).
func CalculateTotals(lines []LineAmount, discountPercentage float64) Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	discount := subtotal * discountPercentage / 100
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		GrandTotal:     subtotal - discount,
	}
}

// ClampDiscount forces a discount percentage into the valid [0,100] range.
func ClampDiscount(percentage float64) float64 {
	if percentage < 0 {
		return 0
	}
	if percentage > 100 {
		return 100
	}
	return percentage
}
