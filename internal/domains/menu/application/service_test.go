package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	menumemory "github.com/cheezenes/pos-api/internal/domains/menu/adapters/memory"
	menutypes "github.com/cheezenes/pos-api/internal/domains/menu/application/types"
	"github.com/cheezenes/pos-api/internal/domains/menu/ports"
)

func TestAdd_Success(t *testing.T) {
	repo := menumemory.NewRepository()
	svc := NewService(repo)

	item, err := svc.Add(context.Background(), menutypes.ItemInput{Name: "Masala Dosa", Category: "South Indian", Price: 120})

	require.NoError(t, err)
	require.NotZero(t, item.ID)
	require.Equal(t, "Masala Dosa", item.Name)
	require.True(t, item.Available)
	require.False(t, item.CreatedAt.IsZero())
	require.False(t, item.UpdatedAt.IsZero())
}

func TestAdd_AvailabilityCanBeDisabled(t *testing.T) {
	repo := menumemory.NewRepository()
	svc := NewService(repo)

	unavailable := false
	item, err := svc.Add(context.Background(), menutypes.ItemInput{
		Name: "Seasonal Special", Category: "Specials", Price: 150, Available: &unavailable,
	})
	require.NoError(t, err)
	require.False(t, item.Available)
}

func TestAdd_InvalidInput(t *testing.T) {
	repo := menumemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), menutypes.ItemInput{Name: "", Category: "Snacks", Price: 10})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Add(context.Background(), menutypes.ItemInput{Name: "Vada", Category: "Snacks", Price: -5})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_SortedByCategoryThenName(t *testing.T) {
	repo := menumemory.NewRepository()
	svc := NewService(repo)

	fixtures := []menutypes.ItemInput{
		{Name: "Filter Coffee", Category: "Beverages", Price: 40},
		{Name: "Masala Dosa", Category: "South Indian", Price: 120},
		{Name: "Idli", Category: "South Indian", Price: 60},
		{Name: "Chai", Category: "Beverages", Price: 20},
	}
	for _, fixture := range fixtures {
		_, err := svc.Add(context.Background(), fixture)
		require.NoError(t, err)
	}

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	require.Equal(t, []string{"Chai", "Filter Coffee", "Idli", "Masala Dosa"}, names)
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	repo := menumemory.NewRepository()
	svc := NewService(repo)

	item, err := svc.Add(context.Background(), menutypes.ItemInput{Name: "Idli", Category: "South Indian", Price: 60})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), item.ID, menutypes.ItemInput{Name: "Ghee Idli", Category: "Specials", Price: 80})
	require.NoError(t, err)
	require.Equal(t, "Ghee Idli", updated.Name)
	require.Equal(t, "Specials", updated.Category)
	require.Equal(t, 80.0, updated.Price)
	require.Equal(t, item.CreatedAt, updated.CreatedAt)
}

func TestUpdate_UnknownItem(t *testing.T) {
	repo := menumemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 999, menutypes.ItemInput{Name: "Idli", Category: "South Indian", Price: 60})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete_UnknownItem(t *testing.T) {
	repo := menumemory.NewRepository()
	svc := NewService(repo)

	err := svc.Delete(context.Background(), 999)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete_RemovesItem(t *testing.T) {
	repo := menumemory.NewRepository()
	svc := NewService(repo)

	item, err := svc.Add(context.Background(), menutypes.ItemInput{Name: "Idli", Category: "South Indian", Price: 60})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), item.ID))

	_, err = svc.Get(context.Background(), item.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
