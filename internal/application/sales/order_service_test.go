package sales

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Order), args.Error(1)
}

func (m *MockOrderRepository) FindRecent(ctx context.Context, limit int) ([]sales.Order, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]sales.Order), args.Error(1)
}

func (m *MockOrderRepository) FindRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]sales.Order, error) {
	args := m.Called(ctx, customerID, limit)
	return args.Get(0).([]sales.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) SumTotalByEmployee(ctx context.Context, employeeID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockOrderRepository) SalesByProduct(ctx context.Context, productID uuid.UUID) ([]sales.ProductSales, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]sales.ProductSales), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *sales.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveItem(ctx context.Context, item *sales.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBelowReorderLevel(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func catalogProduct(t *testing.T, price string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("Espresso", "", "SKU-"+uuid.NewString()[:8], decimal.RequireFromString(price))
	require.NoError(t, err)
	return product
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates order pricing items from catalog", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo)

		product := catalogProduct(t, "2.50")
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		orderRepo.On("Save", ctx, mock.AnythingOfType("*sales.Order")).Return(nil)

		resp, err := service.Create(ctx, CreateOrderRequest{
			Items: []OrderItemRequest{{ProductID: product.ID, Quantity: 3}},
		})

		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		require.Len(t, resp.Items, 1)
		assert.True(t, resp.Items[0].Price.Equal(decimal.RequireFromString("2.50")))
		assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("7.50")))
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo)

		missing := uuid.New()
		productRepo.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, CreateOrderRequest{
			Items: []OrderItemRequest{{ProductID: missing, Quantity: 1}},
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		orderRepo.AssertNotCalled(t, "Save")
	})
}

func TestOrderService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("appends item and recomputes total", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo)

		order := sales.NewOrder(nil, nil, nil)
		existing := catalogProduct(t, "4.00")
		_, err := order.AddItem(existing.ID, 1, existing.Price)
		require.NoError(t, err)

		product := catalogProduct(t, "2.00")
		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		orderRepo.On("Save", ctx, order).Return(nil)

		resp, err := service.AddItem(ctx, order.ID, AddOrderItemRequest{ProductID: product.ID, Quantity: 2})

		require.NoError(t, err)
		require.Len(t, resp.Items, 2)
		assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("8.00")))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo)

		order := sales.NewOrder(nil, nil, nil)
		product := catalogProduct(t, "2.00")
		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err := service.AddItem(ctx, order.ID, AddOrderItemRequest{ProductID: product.ID, Quantity: 0})

		require.Error(t, err)
		orderRepo.AssertNotCalled(t, "Save")
		assert.Empty(t, order.Items)
	})
}

func TestOrderService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("reassigns table and completes the order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockProductRepository))

		order := sales.NewOrder(nil, nil, nil)
		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		orderRepo.On("Save", ctx, order).Return(nil)

		tableID := uuid.New()
		status := "completed"
		resp, err := service.Update(ctx, order.ID, UpdateOrderRequest{
			TableID: &tableID,
			Status:  &status,
		})

		require.NoError(t, err)
		require.NotNil(t, resp.TableID)
		assert.Equal(t, tableID, *resp.TableID)
		assert.Equal(t, "completed", resp.Status)
		orderRepo.AssertExpectations(t)
	})

	t.Run("keeps omitted fields unchanged", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockProductRepository))

		customerID := uuid.New()
		order := sales.NewOrder(&customerID, nil, nil)
		originalDate := order.Date
		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		orderRepo.On("Save", ctx, order).Return(nil)

		employeeID := uuid.New()
		resp, err := service.Update(ctx, order.ID, UpdateOrderRequest{EmployeeID: &employeeID})

		require.NoError(t, err)
		require.NotNil(t, resp.CustomerID)
		assert.Equal(t, customerID, *resp.CustomerID)
		assert.True(t, originalDate.Equal(resp.Date))
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockProductRepository))

		order := sales.NewOrder(nil, nil, nil)
		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		status := "shipped"
		_, err := service.Update(ctx, order.ID, UpdateOrderRequest{Status: &status})

		require.Error(t, err)
		orderRepo.AssertNotCalled(t, "Save")
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := NewOrderService(orderRepo, productRepo)

	order := sales.NewOrder(nil, nil, nil)
	orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	orderRepo.On("Save", ctx, order).Return(nil)

	resp, err := service.UpdateStatus(ctx, order.ID, UpdateOrderStatusRequest{Status: "completed"})

	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}
