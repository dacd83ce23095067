package sales

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Payment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]sales.Payment, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]sales.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *sales.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func TestPaymentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("records payment against existing order", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		orderRepo := new(MockOrderRepository)
		service := NewPaymentService(paymentRepo, orderRepo)

		order := sales.NewOrder(nil, nil, nil)
		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		paymentRepo.On("Save", ctx, mock.AnythingOfType("*sales.Payment")).Return(nil)

		resp, err := service.Create(ctx, CreatePaymentRequest{
			OrderID: order.ID,
			Amount:  decPtr("12.50"),
			Method:  "card",
		})

		require.NoError(t, err)
		assert.Equal(t, order.ID, resp.OrderID)
		assert.True(t, decimal.RequireFromString("12.50").Equal(resp.Amount))
		assert.False(t, resp.PaidAt.IsZero())
		paymentRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown order", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		orderRepo := new(MockOrderRepository)
		service := NewPaymentService(paymentRepo, orderRepo)

		missing := uuid.New()
		orderRepo.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, CreatePaymentRequest{
			OrderID: missing,
			Amount:  decPtr("12.50"),
			Method:  "cash",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		paymentRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		orderRepo := new(MockOrderRepository)
		service := NewPaymentService(paymentRepo, orderRepo)

		order := sales.NewOrder(nil, nil, nil)
		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		_, err := service.Create(ctx, CreatePaymentRequest{
			OrderID: order.ID,
			Amount:  decPtr("0"),
			Method:  "cash",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
		paymentRepo.AssertNotCalled(t, "Save")
	})
}

func TestPaymentService_Update(t *testing.T) {
	ctx := context.Background()

	newPayment := func(t *testing.T) *sales.Payment {
		t.Helper()
		payment, err := sales.NewPayment(uuid.New(), decimal.RequireFromString("20.00"), sales.PaymentMethodCash)
		require.NoError(t, err)
		return payment
	}

	t.Run("corrects amount and method", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		service := NewPaymentService(paymentRepo, new(MockOrderRepository))

		payment := newPayment(t)
		paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)
		paymentRepo.On("Save", ctx, payment).Return(nil)

		paidAt := time.Date(2026, 8, 15, 19, 30, 0, 0, time.UTC)
		resp, err := service.Update(ctx, payment.ID, UpdatePaymentRequest{
			Amount: decPtr("25.00"),
			Method: strPtr("card"),
			PaidAt: &paidAt,
		})

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("25.00").Equal(resp.Amount))
		assert.Equal(t, "card", resp.Method)
		assert.True(t, paidAt.Equal(resp.PaidAt))
		paymentRepo.AssertExpectations(t)
	})

	t.Run("keeps omitted fields unchanged", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		service := NewPaymentService(paymentRepo, new(MockOrderRepository))

		payment := newPayment(t)
		paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)
		paymentRepo.On("Save", ctx, payment).Return(nil)

		resp, err := service.Update(ctx, payment.ID, UpdatePaymentRequest{Method: strPtr("mobile")})

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("20.00").Equal(resp.Amount))
		assert.Equal(t, "mobile", resp.Method)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		service := NewPaymentService(paymentRepo, new(MockOrderRepository))

		payment := newPayment(t)
		paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)

		_, err := service.Update(ctx, payment.ID, UpdatePaymentRequest{Amount: decPtr("0")})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
		paymentRepo.AssertNotCalled(t, "Save")
	})
}
