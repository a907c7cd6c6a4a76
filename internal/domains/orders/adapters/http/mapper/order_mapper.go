// Package mapper converts between HTTP payloads and the orders domain model.
package mapper

import (
	"time"

	ordertypes "github.com/cheezenes/pos-api/internal/domains/orders/application/types"
	orderdomain "github.com/cheezenes/pos-api/internal/domains/orders/domain"
)

// CheckoutItem is one cart line as submitted by the till.
type CheckoutItem struct {
	MenuItemID int64   `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

// CheckoutOrder captures the inbound checkout payload. Amount fields are
// deliberately absent: the server prices the cart itself.
type CheckoutOrder struct {
	OrderType          string         `json:"orderType"`
	TableNumber        string         `json:"tableNumber,omitempty"`
	Items              []CheckoutItem `json:"items"`
	DiscountPercentage float64        `json:"discountPercentage,omitempty"`
	PaymentMethod      string         `json:"paymentMethod"`
	CustomerName       string         `json:"customerName,omitempty"`
	CustomerPhone      string         `json:"customerPhone,omitempty"`
}

// CheckoutResult reports the persisted order's identifiers.
type CheckoutResult struct {
	OrderID     int64  `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

// LineItem is the HTTP representation of a priced cart line.
type LineItem struct {
	ID         int64   `json:"id"`
	MenuItemID int64   `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Subtotal   float64 `json:"subtotal"`
}

// Order is the HTTP representation of a persisted order. Items is omitted in
// history listings.
type Order struct {
	ID                 int64      `json:"id"`
	OrderNumber        string     `json:"orderNumber"`
	OrderType          string     `json:"orderType"`
	TableNumber        string     `json:"tableNumber,omitempty"`
	Subtotal           float64    `json:"subtotal"`
	DiscountPercentage float64    `json:"discountPercentage"`
	DiscountAmount     float64    `json:"discountAmount"`
	TotalAmount        float64    `json:"totalAmount"`
	PaymentMethod      string     `json:"paymentMethod"`
	CustomerName       string     `json:"customerName,omitempty"`
	CustomerPhone      string     `json:"customerPhone,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
	Items              []LineItem `json:"items,omitempty"`
}

// ToCheckoutInput maps the transport payload into the application input shape.
func ToCheckoutInput(payload CheckoutOrder, idempotencyKey string) ordertypes.CheckoutInput {
	items := make([]ordertypes.CheckoutItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, ordertypes.CheckoutItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}
	return ordertypes.CheckoutInput{
		OrderType:          payload.OrderType,
		TableNumber:        payload.TableNumber,
		Items:              items,
		DiscountPercentage: payload.DiscountPercentage,
		PaymentMethod:      payload.PaymentMethod,
		CustomerName:       payload.CustomerName,
		CustomerPhone:      payload.CustomerPhone,
		IdempotencyKey:     idempotencyKey,
	}
}

// FromCheckoutResult converts the application result to the transport shape.
func FromCheckoutResult(result *ordertypes.CheckoutResult) CheckoutResult {
	if result == nil {
		return CheckoutResult{}
	}
	return CheckoutResult{OrderID: result.OrderID, OrderNumber: result.OrderNumber}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	items := make([]LineItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, LineItem{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal,
		})
	}
	if len(items) == 0 {
		items = nil
	}
	return Order{
		ID:                 order.ID,
		OrderNumber:        order.Number,
		OrderType:          string(order.Type),
		TableNumber:        order.TableNumber,
		Subtotal:           order.Subtotal,
		DiscountPercentage: order.DiscountPercentage,
		DiscountAmount:     order.DiscountAmount,
		TotalAmount:        order.TotalAmount,
		PaymentMethod:      order.PaymentMethod,
		CustomerName:       order.CustomerName,
		CustomerPhone:      order.CustomerPhone,
		Status:             order.Status,
		CreatedAt:          order.CreatedAt,
		Items:              items,
	}
}

// FromDomainOrderList converts a history listing.
func FromDomainOrderList(orders []*orderdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
