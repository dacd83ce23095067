package accounting

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/accounting"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEntryRepository is a mock implementation of accounting.EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]accounting.Entry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]accounting.Entry), args.Error(1)
}

func (m *MockEntryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) SumByType(ctx context.Context, entryType accounting.EntryType) (decimal.Decimal, error) {
	args := m.Called(ctx, entryType)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockEntryRepository) Save(ctx context.Context, entry *accounting.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
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

func TestEntryService_Create(t *testing.T) {
	t.Run("records income entry", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewEntryService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*accounting.Entry")).Return(nil)

		resp, err := service.Create(context.Background(), CreateEntryRequest{
			EntryType:   "income",
			Amount:      decPtr("120.50"),
			Description: "Evening sales",
			Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		})

		require.NoError(t, err)
		assert.Equal(t, "income", resp.EntryType)
		assert.True(t, decimal.NewFromFloat(120.50).Equal(resp.Amount))
		repo.AssertExpectations(t)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewEntryService(repo)

		_, err := service.Create(context.Background(), CreateEntryRequest{
			EntryType: "expense",
			Amount:    decPtr("-5.00"),
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("accepts an explicit zero amount", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewEntryService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*accounting.Entry")).Return(nil)

		resp, err := service.Create(context.Background(), CreateEntryRequest{
			EntryType:   "expense",
			Amount:      decPtr("0"),
			Description: "Written-off delivery",
		})

		require.NoError(t, err)
		assert.True(t, resp.Amount.IsZero())
	})

	t.Run("defaults zero date to now", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewEntryService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*accounting.Entry")).Return(nil)

		resp, err := service.Create(context.Background(), CreateEntryRequest{
			EntryType: "expense",
			Amount:    decPtr("42.00"),
		})

		require.NoError(t, err)
		assert.False(t, resp.Date.IsZero())
	})
}

func TestEntryService_Update(t *testing.T) {
	newEntry := func(t *testing.T) *accounting.Entry {
		t.Helper()
		entry, err := accounting.NewEntry(accounting.EntryTypeExpense, decimal.NewFromFloat(30.00), "Supplies", time.Now())
		require.NoError(t, err)
		return entry
	}

	t.Run("changes amount and type", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewEntryService(repo)

		entry := newEntry(t)
		repo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
		repo.On("Save", mock.Anything, entry).Return(nil)

		resp, err := service.Update(context.Background(), entry.ID, UpdateEntryRequest{
			EntryType: strPtr("income"),
			Amount:    decPtr("55.00"),
		})

		require.NoError(t, err)
		assert.Equal(t, "income", resp.EntryType)
		assert.True(t, decimal.RequireFromString("55.00").Equal(resp.Amount))
		assert.Equal(t, "Supplies", resp.Description)
		repo.AssertExpectations(t)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewEntryService(repo)

		entry := newEntry(t)
		repo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)

		_, err := service.Update(context.Background(), entry.ID, UpdateEntryRequest{
			Amount: decPtr("-1.00"),
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("returns not found for unknown entry", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewEntryService(repo)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(context.Background(), id, UpdateEntryRequest{Amount: decPtr("5.00")})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestEntryService_Summary(t *testing.T) {
	t.Run("computes net profit", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewEntryService(repo)

		repo.On("SumByType", mock.Anything, accounting.EntryTypeIncome).Return(decimal.NewFromFloat(500.00), nil)
		repo.On("SumByType", mock.Anything, accounting.EntryTypeExpense).Return(decimal.NewFromFloat(180.25), nil)

		summary, err := service.Summary(context.Background())

		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(500.00).Equal(summary.TotalIncome))
		assert.True(t, decimal.NewFromFloat(180.25).Equal(summary.TotalExpense))
		assert.True(t, decimal.NewFromFloat(319.75).Equal(summary.NetProfit))
	})

	t.Run("returns zeros when no entries exist", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewEntryService(repo)

		repo.On("SumByType", mock.Anything, accounting.EntryTypeIncome).Return(decimal.Zero, nil)
		repo.On("SumByType", mock.Anything, accounting.EntryTypeExpense).Return(decimal.Zero, nil)

		summary, err := service.Summary(context.Background())

		require.NoError(t, err)
		assert.True(t, summary.TotalIncome.IsZero())
		assert.True(t, summary.TotalExpense.IsZero())
		assert.True(t, summary.NetProfit.IsZero())
	})
}

func TestEntryService_List(t *testing.T) {
	t.Run("filters by entry type", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewEntryService(repo)

		entry, err := accounting.NewEntry(accounting.EntryTypeExpense, decimal.NewFromFloat(30.00), "Supplies", time.Now())
		require.NoError(t, err)

		repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["entry_type"] == "expense"
		})).Return([]accounting.Entry{*entry}, nil)
		repo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

		result, err := service.List(context.Background(), EntryListFilter{EntryType: "expense"})

		require.NoError(t, err)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, "expense", result.Items[0].EntryType)
		repo.AssertExpectations(t)
	})
}
