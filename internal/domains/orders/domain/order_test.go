package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartFixture() []LineItem {
	return []LineItem{
		{MenuItemID: 1, Name: "Burger", Quantity: 2, UnitPrice: 500},
		{MenuItemID: 5, Name: "Coke", Quantity: 1, UnitPrice: 150},
	}
}

func TestNewOrder_DineRequiresTable(t *testing.T) {
	_, err := NewOrder(TypeDine, "", cartFixture(), 0, "cash", "", "")
	assert.ErrorIs(t, err, ErrMissingTable)

	order, err := NewOrder(TypeDine, "5", cartFixture(), 0, "cash", "", "")
	require.NoError(t, err)
	assert.Equal(t, "5", order.TableNumber)
}

func TestNewOrder_TableDroppedForTakeaway(t *testing.T) {
	order, err := NewOrder(TypeTakeaway, "9", cartFixture(), 0, "card", "", "")
	require.NoError(t, err)
	assert.Empty(t, order.TableNumber)
}

func TestNewOrder_EmptyCart(t *testing.T) {
	_, err := NewOrder(TypeDine, "3", nil, 0, "cash", "", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestNewOrder_DefaultsToDine(t *testing.T) {
	_, err := NewOrder("", "", cartFixture(), 0, "cash", "", "")
	assert.ErrorIs(t, err, ErrMissingTable)
}

func TestNewOrder_RejectsUnknownType(t *testing.T) {
	_, err := NewOrder("delivery", "", cartFixture(), 0, "cash", "", "")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestNewOrder_RejectsBadLines(t *testing.T) {
	_, err := NewOrder(TypeParcel, "", []LineItem{{Name: "Fries", Quantity: 0, UnitPrice: 200}}, 0, "cash", "", "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewOrder(TypeParcel, "", []LineItem{{Name: "Fries", Quantity: 1, UnitPrice: -1}}, 0, "cash", "", "")
	assert.ErrorIs(t, err, ErrInvalidUnitPrice)

	_, err = NewOrder(TypeParcel, "", []LineItem{{Name: "  ", Quantity: 1, UnitPrice: 200}}, 0, "cash", "", "")
	assert.ErrorIs(t, err, ErrEmptyItemName)
}

func TestNewOrder_RequiresPaymentMethod(t *testing.T) {
	_, err := NewOrder(TypeTakeaway, "", cartFixture(), 0, " ", "", "")
	assert.ErrorIs(t, err, ErrMissingPayment)
}

func TestNewOrder_ComputesLineSubtotals(t *testing.T) {
	order, err := NewOrder(TypeTakeaway, "", cartFixture(), 0, "cash", "", "")
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, 1000.0, order.Items[0].Subtotal)
	assert.Equal(t, 150.0, order.Items[1].Subtotal)
	assert.Equal(t, 1150.0, order.Subtotal)
	assert.Equal(t, StatusCompleted, order.Status)
}
