// Package mapper converts between HTTP payloads and the menu domain model.
package mapper

import (
	"time"

	menutypes "github.com/cheezenes/pos-api/internal/domains/menu/application/types"
	menudomain "github.com/cheezenes/pos-api/internal/domains/menu/domain"
)

// MutationItem captures inbound payloads for create/update flows while
// preserving field presence for the availability flag.
type MutationItem struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

// Item is the HTTP representation of a menu item.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// ToItemInput maps a transport mutation into the application input shape.
func ToItemInput(payload MutationItem) menutypes.ItemInput {
	return menutypes.ItemInput{
		Name:        payload.Name,
		Category:    payload.Category,
		Price:       payload.Price,
		Description: payload.Description,
		Available:   payload.Available,
	}
}

// FromDomainItem converts a domain item to the transport representation.
func FromDomainItem(item *menudomain.Item) Item {
	if item == nil {
		return Item{}
	}
	return Item{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price,
		Description: item.Description,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// FromDomainItemList converts a catalog listing.
func FromDomainItemList(items []*menudomain.Item) []Item {
	result := make([]Item, 0, len(items))
	for _, item := range items {
		result = append(result, FromDomainItem(item))
	}
	return result
}
