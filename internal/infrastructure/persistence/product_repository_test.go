package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProductTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&catalog.Product{})
	require.NoError(t, err)

	return db
}

func mustNewProduct(t *testing.T, name, sku string, price string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "", sku, decimal.RequireFromString(price))
	require.NoError(t, err)
	return product
}

func TestGormProductRepository_SaveAndFind(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("saves and finds by ID", func(t *testing.T) {
		product := mustNewProduct(t, "Espresso", "SKU-ESP-01", "2.50")
		require.NoError(t, repo.Save(ctx, product))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
		assert.Equal(t, "Espresso", found.Name)
		assert.True(t, found.Price.Equal(decimal.RequireFromString("2.50")))
	})

	t.Run("finds by SKU", func(t *testing.T) {
		product := mustNewProduct(t, "Latte", "SKU-LAT-01", "3.80")
		require.NoError(t, repo.Save(ctx, product))

		found, err := repo.FindBySKU(ctx, "SKU-LAT-01")
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
	})

	t.Run("returns ErrNotFound for missing product", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_ExistsBySKU(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := mustNewProduct(t, "Cappuccino", "SKU-CAP-01", "3.50")
	require.NoError(t, repo.Save(ctx, product))

	exists, err := repo.ExistsBySKU(ctx, "SKU-CAP-01")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBySKU(ctx, "SKU-MISSING")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormProductRepository_FindBelowReorderLevel(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	low := mustNewProduct(t, "Beans", "SKU-BEAN-01", "12.00")
	require.NoError(t, low.AdjustStock(5)) // reorder level defaults to 10
	require.NoError(t, repo.Save(ctx, low))

	high := mustNewProduct(t, "Milk", "SKU-MILK-01", "1.20")
	require.NoError(t, high.AdjustStock(50))
	require.NoError(t, repo.Save(ctx, high))

	products, err := repo.FindBelowReorderLevel(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, low.ID, products[0].ID)
}

func TestGormProductRepository_FindAllAndCount(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	for i, name := range []string{"Americano", "Mocha", "Flat White"} {
		product := mustNewProduct(t, name, fmt.Sprintf("SKU-%03d", i+1), "3.00")
		require.NoError(t, repo.Save(ctx, product))
	}

	filter := shared.DefaultFilter()
	filter.PageSize = 2
	filter.OrderBy = "name"
	filter.OrderDir = "asc"

	products, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "Americano", products[0].Name)

	count, err := repo.Count(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGormProductRepository_Delete(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := mustNewProduct(t, "Tea", "SKU-TEA-01", "2.00")
	require.NoError(t, repo.Save(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err := repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.Delete(ctx, product.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
