package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/cheezenes/pos-api/internal/domains/orders/application/types"
)

type normalizedCheckoutInput struct {
	OrderType          string                   `json:"orderType"`
	TableNumber        string                   `json:"tableNumber"`
	Items              []normalizedCheckoutItem `json:"items"`
	DiscountPercentage float64                  `json:"discountPercentage"`
	PaymentMethod      string                   `json:"paymentMethod"`
	CustomerName       string                   `json:"customerName"`
	CustomerPhone      string                   `json:"customerPhone"`
}

type normalizedCheckoutItem struct {
	MenuItemID int64   `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

// FingerprintCheckout builds a deterministic hash of the checkout payload
// (excluding the idempotency key itself), used to detect key reuse with a
// different cart.
func FingerprintCheckout(input types.CheckoutInput) (string, error) {
	normalized := normalizedCheckoutInput{
		OrderType:          input.OrderType,
		TableNumber:        input.TableNumber,
		DiscountPercentage: input.DiscountPercentage,
		PaymentMethod:      input.PaymentMethod,
		CustomerName:       input.CustomerName,
		CustomerPhone:      input.CustomerPhone,
	}
	normalized.Items = make([]normalizedCheckoutItem, 0, len(input.Items))
	for _, item := range input.Items {
		normalized.Items = append(normalized.Items, normalizedCheckoutItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
