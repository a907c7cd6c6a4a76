// Package types holds the input shapes of the menu use cases.
package types

// ItemInput carries the editable fields of a menu item. Updates replace every
// field. Available is a pointer so an omitted value defaults to true instead of
// silently disabling the item.
type ItemInput struct {
	Name        string
	Category    string
	Price       float64
	Description string
	Available   *bool
}
