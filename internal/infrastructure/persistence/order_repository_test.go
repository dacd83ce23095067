package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&sales.Order{}, &sales.OrderItem{})
	require.NoError(t, err)

	return db
}

func TestGormOrderRepository_SaveAndFind(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	t.Run("saves order with items and loads them back", func(t *testing.T) {
		customerID := uuid.New()
		order := sales.NewOrder(&customerID, nil, nil)
		_, err := order.AddItem(uuid.New(), 2, decimal.RequireFromString("3.50"))
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, order))

		found, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.True(t, found.TotalAmount.Equal(decimal.RequireFromString("7.00")))
		require.NotNil(t, found.CustomerID)
		assert.Equal(t, customerID, *found.CustomerID)
	})

	t.Run("returns ErrNotFound for missing order", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormOrderRepository_FindRecent(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	var last *sales.Order
	for i := 0; i < 5; i++ {
		order := sales.NewOrder(&customerID, nil, nil)
		require.NoError(t, repo.Save(ctx, order))
		last = order
	}

	orders, err := repo.FindRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, last.ID, orders[0].ID)

	byCustomer, err := repo.FindRecentByCustomer(ctx, customerID, 2)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 2)

	other, err := repo.FindRecentByCustomer(ctx, uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestGormOrderRepository_EmployeeAggregates(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	employeeID := uuid.New()
	for _, amount := range []string{"10.00", "25.50"} {
		order := sales.NewOrder(nil, &employeeID, nil)
		_, err := order.AddItem(uuid.New(), 1, decimal.RequireFromString(amount))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, order))
	}

	count, err := repo.CountByEmployee(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	total, err := repo.SumTotalByEmployee(ctx, employeeID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("35.50")))

	// Employee with no orders sums to zero
	total, err = repo.SumTotalByEmployee(ctx, uuid.New())
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestGormOrderRepository_SaveItem(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := sales.NewOrder(nil, nil, nil)
	require.NoError(t, repo.Save(ctx, order))

	item, err := sales.NewOrderItem(order.ID, uuid.New(), 3, decimal.RequireFromString("2.00"))
	require.NoError(t, err)
	require.NoError(t, repo.SaveItem(ctx, item))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, 3, found.Items[0].Quantity)
}

func TestGormOrderRepository_SalesByProduct(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	productID := uuid.New()
	day1 := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 18, 0, 0, 0, time.UTC)

	// Two orders on day1, one on day2, plus an order for another product
	for _, o := range []struct {
		date time.Time
		qty  int
	}{
		{day1, 4},
		{day1, 2},
		{day2, 5},
	} {
		order := sales.NewOrder(nil, nil, nil)
		order.Date = o.date
		_, err := order.AddItem(productID, o.qty, decimal.RequireFromString("1.50"))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, order))
	}
	other := sales.NewOrder(nil, nil, nil)
	other.Date = day1
	_, err := other.AddItem(uuid.New(), 9, decimal.RequireFromString("1.00"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	history, err := repo.SalesByProduct(ctx, productID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2026-08-01", history[0].Date.Format("2006-01-02"))
	assert.Equal(t, 6, history[0].TotalSold)
	assert.Equal(t, "2026-08-02", history[1].Date.Format("2006-01-02"))
	assert.Equal(t, 5, history[1].TotalSold)

	// Product never sold yields an empty history
	none, err := repo.SalesByProduct(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}
