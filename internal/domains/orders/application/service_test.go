package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	ordermemory "github.com/cheezenes/pos-api/internal/domains/orders/adapters/memory"
	ordertypes "github.com/cheezenes/pos-api/internal/domains/orders/application/types"
	"github.com/cheezenes/pos-api/internal/domains/orders/domain"
	"github.com/cheezenes/pos-api/internal/domains/orders/ports"
)

func checkoutFixture() ordertypes.CheckoutInput {
	return ordertypes.CheckoutInput{
		OrderType:   "dine",
		TableNumber: "T4",
		Items: []ordertypes.CheckoutItem{
			{MenuItemID: 1, Name: "Masala Dosa", Quantity: 2, UnitPrice: 120},
			{MenuItemID: 2, Name: "Filter Coffee", Quantity: 1, UnitPrice: 40},
		},
		DiscountPercentage: 10,
		PaymentMethod:      "cash",
		CustomerName:       "Asha",
	}
}

func TestCheckout_FirstOrderGetsNumberOne(t *testing.T) {
	repo := ordermemory.NewRepository()
	svc := NewService(repo)

	result, err := svc.Checkout(context.Background(), checkoutFixture())

	require.NoError(t, err)
	require.Equal(t, "ORD-1", result.OrderNumber)

	order, err := svc.Get(context.Background(), result.OrderID)
	require.NoError(t, err)
	require.Equal(t, 280.0, order.Subtotal)
	require.Equal(t, 28.0, order.DiscountAmount)
	require.Equal(t, 252.0, order.TotalAmount)
	require.Equal(t, "completed", order.Status)
	require.Len(t, order.Items, 2)
}

func TestCheckout_NumbersAreSequential(t *testing.T) {
	repo := ordermemory.NewRepository()
	svc := NewService(repo)

	for i := 0; i < 7; i++ {
		_, err := svc.Checkout(context.Background(), checkoutFixture())
		require.NoError(t, err)
	}
	result, err := svc.Checkout(context.Background(), checkoutFixture())
	require.NoError(t, err)
	require.Equal(t, "ORD-8", result.OrderNumber)
}

func TestCheckout_DineRequiresTable(t *testing.T) {
	repo := ordermemory.NewRepository()
	svc := NewService(repo)

	input := checkoutFixture()
	input.TableNumber = ""
	_, err := svc.Checkout(context.Background(), input)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	repo := ordermemory.NewRepository()
	svc := NewService(repo)

	input := checkoutFixture()
	input.Items = nil
	_, err := svc.Checkout(context.Background(), input)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckout_DiscountOutOfRangeIsClamped(t *testing.T) {
	repo := ordermemory.NewRepository()
	svc := NewService(repo)

	input := checkoutFixture()
	input.DiscountPercentage = 150
	result, err := svc.Checkout(context.Background(), input)
	require.NoError(t, err)

	order, err := svc.Get(context.Background(), result.OrderID)
	require.NoError(t, err)
	require.Equal(t, 100.0, order.DiscountPercentage)
	require.Equal(t, 0.0, order.TotalAmount)
}

func TestCheckout_IdempotentReplay(t *testing.T) {
	repo := ordermemory.NewRepository()
	svc := NewService(repo, WithIdempotencyStore(ordermemory.NewIdempotencyStore()))

	input := checkoutFixture()
	input.IdempotencyKey = "till-7-req-42"
	first, err := svc.Checkout(context.Background(), input)
	require.NoError(t, err)

	replay, err := svc.Checkout(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, first.OrderID, replay.OrderID)
	require.Equal(t, first.OrderNumber, replay.OrderNumber)

	orders, err := svc.List(context.Background(), ordertypes.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestCheckout_IdempotencyKeyReusedWithDifferentCart(t *testing.T) {
	repo := ordermemory.NewRepository()
	svc := NewService(repo, WithIdempotencyStore(ordermemory.NewIdempotencyStore()))

	input := checkoutFixture()
	input.IdempotencyKey = "till-7-req-42"
	_, err := svc.Checkout(context.Background(), input)
	require.NoError(t, err)

	input.Items[0].Quantity = 5
	_, err = svc.Checkout(context.Background(), input)
	require.ErrorIs(t, err, ports.ErrIdempotencyConflict)
}

func TestList_FiltersByPaymentMethod(t *testing.T) {
	repo := ordermemory.NewRepository()
	svc := NewService(repo)

	cash := checkoutFixture()
	_, err := svc.Checkout(context.Background(), cash)
	require.NoError(t, err)

	card := checkoutFixture()
	card.PaymentMethod = "card"
	card.CustomerName = "Ravi"
	_, err = svc.Checkout(context.Background(), card)
	require.NoError(t, err)

	orders, err := svc.List(context.Background(), ordertypes.OrderFilter{PaymentMethod: "card"})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "Ravi", orders[0].CustomerName)
}

func TestList_CustomerNameMatchesSubstring(t *testing.T) {
	repo := ordermemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Checkout(context.Background(), checkoutFixture())
	require.NoError(t, err)

	orders, err := svc.List(context.Background(), ordertypes.OrderFilter{CustomerName: "sh"})
	require.NoError(t, err)
	require.Len(t, orders, 1)

	orders, err = svc.List(context.Background(), ordertypes.OrderFilter{CustomerName: "zz"})
	require.NoError(t, err)
	require.Empty(t, orders)
}

// contendedRepo simulates another till winning the order number race a fixed
// number of times before writes start succeeding.
type contendedRepo struct {
	*ordermemory.Repository
	conflicts int
}

func (r *contendedRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if r.conflicts > 0 {
		r.conflicts--
		return nil, ports.ErrDuplicateNumber
	}
	return r.Repository.Create(ctx, order)
}

func TestCheckout_RetriesOnNumberConflict(t *testing.T) {
	repo := &contendedRepo{Repository: ordermemory.NewRepository(), conflicts: 2}
	svc := NewService(repo)

	result, err := svc.Checkout(context.Background(), checkoutFixture())
	require.NoError(t, err)
	require.Equal(t, "ORD-1", result.OrderNumber)
}

func TestCheckout_GivesUpAfterRepeatedConflicts(t *testing.T) {
	repo := &contendedRepo{Repository: ordermemory.NewRepository(), conflicts: 5}
	svc := NewService(repo)

	_, err := svc.Checkout(context.Background(), checkoutFixture())
	require.ErrorIs(t, err, ports.ErrDuplicateNumber)
}

func TestDelete_UnknownOrder(t *testing.T) {
	repo := ordermemory.NewRepository()
	svc := NewService(repo)

	err := svc.Delete(context.Background(), 12345)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestGet_UnknownOrder(t *testing.T) {
	repo := ordermemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Get(context.Background(), 12345)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
