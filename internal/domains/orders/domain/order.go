package domain

import (
	"errors"
	"math"
	"strings"
	"time"
)

// Type enumerates how an order is served.
type Type string

const (
	TypeDine     Type = "dine"
	TypeTakeaway Type = "takeaway"
	TypeParcel   Type = "parcel"
)

// StatusCompleted is the only status the till writes; orders are never edited after checkout.
const StatusCompleted = "completed"

var (
	ErrEmptyCart        = errors.New("order must contain at least one line item")
	ErrInvalidType      = errors.New("order type is invalid")
	ErrMissingTable     = errors.New("table number is required for dine-in orders")
	ErrMissingPayment   = errors.New("payment method is required")
	ErrInvalidQuantity  = errors.New("line item quantity must be greater than zero")
	ErrInvalidUnitPrice = errors.New("line item unit price must not be negative")
	ErrEmptyItemName    = errors.New("line item name is required")
)

// LineItem is a snapshot of a menu item at the moment of sale. The menu item
// reference is weak: renaming or repricing the menu entry later never changes
// the snapshot.
type LineItem struct {
	ID         int64
	MenuItemID int64
	Name       string
	Quantity   int
	UnitPrice  float64
	Subtotal   float64
}

// Order is the aggregate produced by checkout. It is immutable after creation;
// the only lifecycle transition left is a hard delete.
type Order struct {
	ID                 int64
	Number             string
	Type               Type
	TableNumber        string
	Subtotal           float64
	DiscountPercentage float64
	DiscountAmount     float64
	TotalAmount        float64
	PaymentMethod      string
	CustomerName       string
	CustomerPhone      string
	Status             string
	CreatedAt          time.Time
	Items              []LineItem
}

// NewOrder validates the cart and builds a fully priced order aggregate.
// The discount percentage must already be clamped to [0,100] by the caller.
// The order number is assigned separately, right before persistence.
func NewOrder(orderType Type, tableNumber string, items []LineItem, discountPercentage float64, paymentMethod, customerName, customerPhone string) (*Order, error) {
	if orderType == "" {
		orderType = TypeDine
	}
	if !isValidType(orderType) {
		return nil, ErrInvalidType
	}
	tableNumber = strings.TrimSpace(tableNumber)
	if orderType == TypeDine && tableNumber == "" {
		return nil, ErrMissingTable
	}
	if orderType != TypeDine {
		// Table numbers only make sense for dine-in service.
		tableNumber = ""
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, ErrMissingPayment
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]LineItem, 0, len(items))
	amounts := make([]LineAmount, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, ErrEmptyItemName
		}
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if item.UnitPrice < 0 {
			return nil, ErrInvalidUnitPrice
		}
		line := item
		line.Subtotal = item.UnitPrice * float64(item.Quantity)
		lines = append(lines, line)
		amounts = append(amounts, LineAmount{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}

	totals := CalculateTotals(amounts, discountPercentage)
	return &Order{
		Type:               orderType,
		TableNumber:        tableNumber,
		Subtotal:           totals.Subtotal,
		DiscountPercentage: discountPercentage,
		DiscountAmount:     totals.DiscountAmount,
		// Receipts are settled in whole currency units; the subtotal and
		// discount keep their full precision.
		TotalAmount:   math.Floor(totals.GrandTotal),
		PaymentMethod: paymentMethod,
		CustomerName:  strings.TrimSpace(customerName),
		CustomerPhone: strings.TrimSpace(customerPhone),
		Status:        StatusCompleted,
		Items:         lines,
	}, nil
}

// AssignNumber stamps the human-facing order number onto the aggregate.
func (o *Order) AssignNumber(number string) {
	o.Number = number
}

func isValidType(t Type) bool {
	switch t {
	case TypeDine, TypeTakeaway, TypeParcel:
		return true
	default:
		return false
	}
}
