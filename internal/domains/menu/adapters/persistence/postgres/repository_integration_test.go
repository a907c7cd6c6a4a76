//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cheezenes/pos-api/internal/domains/menu/domain"
	"github.com/cheezenes/pos-api/internal/domains/menu/ports"
	"github.com/cheezenes/pos-api/internal/platform/migrations"
)

func setupMenuPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("pos_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func newTestItem(t *testing.T, name, category string, price float64) *domain.Item {
	t.Helper()
	item, err := domain.NewItem(name, category, "", price, true)
	require.NoError(t, err)
	return item
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMenuPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTestItem(t, "Masala Dosa", "tiffin", 120))
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.True(t, saved.Available)
	assert.False(t, saved.CreatedAt.IsZero())

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Masala Dosa", fetched.Name)
	assert.Equal(t, 120.0, fetched.Price)
}

func TestRepository_SaveReplacesAllFields(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMenuPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTestItem(t, "Masala Dosa", "tiffin", 120))
	require.NoError(t, err)

	updated := &domain.Item{
		ID:          saved.ID,
		Name:        "Ghee Masala Dosa",
		Category:    "tiffin",
		Price:       150,
		Description: "extra ghee roast",
		Available:   false,
	}
	replaced, err := repo.Save(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, "Ghee Masala Dosa", replaced.Name)
	assert.Equal(t, 150.0, replaced.Price)
	assert.Equal(t, "extra ghee roast", replaced.Description)
	assert.False(t, replaced.Available)
	assert.Equal(t, saved.CreatedAt.Unix(), replaced.CreatedAt.Unix())
}

func TestRepository_ListOrdersByCategoryThenName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMenuPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for _, seed := range []struct {
		name     string
		category string
		price    float64
	}{
		{"Masala Dosa", "tiffin", 120},
		{"Idli", "tiffin", 60},
		{"Filter Coffee", "beverages", 40},
	} {
		_, err := repo.Save(ctx, newTestItem(t, seed.name, seed.category, seed.price))
		require.NoError(t, err)
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Filter Coffee", items[0].Name)
	assert.Equal(t, "Idli", items[1].Name)
	assert.Equal(t, "Masala Dosa", items[2].Name)
}

func TestRepository_DeleteUnknownID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMenuPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTestItem(t, "Vada", "tiffin", 30))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, saved.ID))

	_, err = repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	err = repo.Delete(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
