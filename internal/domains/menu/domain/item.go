// Package domain holds the menu catalog model and its invariants.
package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName     = errors.New("menu item name is required")
	ErrEmptyCategory = errors.New("menu item category is required")
	ErrNegativePrice = errors.New("menu item price must not be negative")
)

// Item is a single sellable dish on the menu. Orders snapshot its name and
// price at checkout, so editing an item never rewrites sales history.
type Item struct {
	ID          int64
	Name        string
	Category    string
	Price       float64
	Description string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem validates and builds a menu item.
func NewItem(name, category, description string, price float64, available bool) (*Item, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return nil, ErrEmptyName
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	return &Item{
		Name:        name,
		Category:    category,
		Price:       price,
		Description: strings.TrimSpace(description),
		Available:   available,
	}, nil
}

// Replace overwrites every editable field with new values. Item updates are
// full replacements, not patches.
func (i *Item) Replace(name, category, description string, price float64, available bool) error {
	replacement, err := NewItem(name, category, description, price, available)
	if err != nil {
		return err
	}
	i.Name = replacement.Name
	i.Category = replacement.Category
	i.Price = replacement.Price
	i.Description = replacement.Description
	i.Available = replacement.Available
	return nil
}
