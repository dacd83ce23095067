package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductSales is a per-day sales aggregate for a single product
type ProductSales struct {
	Date      time.Time `json:"date"`
	TotalSold int       `json:"total_sold"`
}

// OrderRepository defines the persistence interface for orders.
// FindByID loads the order together with its line items.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	FindRecent(ctx context.Context, limit int) ([]Order, error)
	FindRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error)
	SumTotalByEmployee(ctx context.Context, employeeID uuid.UUID) (decimal.Decimal, error)
	SalesByProduct(ctx context.Context, productID uuid.UUID) ([]ProductSales, error)
	Save(ctx context.Context, order *Order) error
	SaveItem(ctx context.Context, item *OrderItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TableRepository defines the persistence interface for tables
type TableRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Table, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Table, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, table *Table) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines the persistence interface for payments
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Payment, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Payment, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
