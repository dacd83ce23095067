package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	catalogapp "github.com/pos/backend/internal/application/catalog"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/interfaces/http/dto"
)

// MockProductRepository implements catalog.ProductRepository for testing
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

// MockStockMirror implements catalog.StockMirror for testing
type MockStockMirror struct {
	mock.Mock
}

func (m *MockStockMirror) PublishStock(ctx context.Context, productID uuid.UUID, stockQuantity int) error {
	args := m.Called(ctx, productID, stockQuantity)
	return args.Error(0)
}

func setupProductRouter(repo *MockProductRepository, mirror *MockStockMirror) *gin.Engine {
	service := catalogapp.NewProductService(repo, mirror, zap.NewNop())
	h := NewProductHandler(service)

	router := gin.New()
	router.POST("/products", h.Create)
	router.GET("/products/low-stock", h.LowStock)
	router.GET("/products/:id", h.Get)
	router.POST("/products/:id/stock", h.AdjustStock)
	return router
}

func TestProductHandlerCreate(t *testing.T) {
	t.Run("creates product", func(t *testing.T) {
		repo := new(MockProductRepository)
		mirror := new(MockStockMirror)
		repo.On("ExistsBySKU", mock.Anything, "ESP-001").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		router := setupProductRouter(repo, mirror)

		body := `{"name":"Espresso","sku":"ESP-001","price":"3.50"}`
		req := httptest.NewRequest("POST", "/products", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate SKU", func(t *testing.T) {
		repo := new(MockProductRepository)
		mirror := new(MockStockMirror)
		repo.On("ExistsBySKU", mock.Anything, "ESP-001").Return(true, nil)

		router := setupProductRouter(repo, mirror)

		body := `{"name":"Espresso","sku":"ESP-001","price":"3.50"}`
		req := httptest.NewRequest("POST", "/products", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		repo := new(MockProductRepository)
		mirror := new(MockStockMirror)

		router := setupProductRouter(repo, mirror)

		req := httptest.NewRequest("POST", "/products", bytes.NewBufferString(`{"description":"no name"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductHandlerGet(t *testing.T) {
	t.Run("returns 404 for unknown product", func(t *testing.T) {
		repo := new(MockProductRepository)
		mirror := new(MockStockMirror)
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		router := setupProductRouter(repo, mirror)

		req := httptest.NewRequest("GET", "/products/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 for malformed id", func(t *testing.T) {
		repo := new(MockProductRepository)
		mirror := new(MockStockMirror)

		router := setupProductRouter(repo, mirror)

		req := httptest.NewRequest("GET", "/products/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandlerAdjustStock(t *testing.T) {
	newProduct := func(t *testing.T, stock int) *catalog.Product {
		t.Helper()
		p, err := catalog.NewProduct("Espresso", "", "ESP-001", decimal.NewFromFloat(3.5))
		require.NoError(t, err)
		if stock > 0 {
			require.NoError(t, p.AdjustStock(stock))
		}
		return p
	}

	t.Run("applies positive delta and mirrors new level", func(t *testing.T) {
		repo := new(MockProductRepository)
		mirror := new(MockStockMirror)
		product := newProduct(t, 10)
		repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		repo.On("Save", mock.Anything, product).Return(nil)
		mirror.On("PublishStock", mock.Anything, product.ID, 15).Return(nil)

		router := setupProductRouter(repo, mirror)

		req := httptest.NewRequest("POST", "/products/"+product.ID.String()+"/stock",
			bytes.NewBufferString(`{"quantity":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mirror.AssertExpectations(t)

		var resp struct {
			Data catalogapp.ProductResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 15, resp.Data.StockQuantity)
	})

	t.Run("accepts an explicit zero delta", func(t *testing.T) {
		repo := new(MockProductRepository)
		mirror := new(MockStockMirror)
		product := newProduct(t, 10)
		repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		repo.On("Save", mock.Anything, product).Return(nil)
		mirror.On("PublishStock", mock.Anything, product.ID, 10).Return(nil)

		router := setupProductRouter(repo, mirror)

		req := httptest.NewRequest("POST", "/products/"+product.ID.String()+"/stock",
			bytes.NewBufferString(`{"quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data catalogapp.ProductResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 10, resp.Data.StockQuantity)
	})

	t.Run("rejects delta that would drive stock negative", func(t *testing.T) {
		repo := new(MockProductRepository)
		mirror := new(MockStockMirror)
		product := newProduct(t, 3)
		repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		router := setupProductRouter(repo, mirror)

		req := httptest.NewRequest("POST", "/products/"+product.ID.String()+"/stock",
			bytes.NewBufferString(`{"quantity":-4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		mirror.AssertNotCalled(t, "PublishStock", mock.Anything, mock.Anything, mock.Anything)
	})
}
