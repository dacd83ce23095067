package persistence

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var orderSortColumns = map[string]bool{
	"date":         true,
	"status":       true,
	"total_amount": true,
	"created_at":   true,
}

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its line items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Order, error) {
	var order sales.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds all orders matching the filter
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Order, error) {
	var orders []sales.Order
	query := r.db.WithContext(ctx).Model(&sales.Order{}).Preload("Items")
	query = r.applyFilters(query, filter)
	query = applyOrdering(query, filter, orderSortColumns, "date DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindRecent finds the most recent orders, newest first
func (r *GormOrderRepository) FindRecent(ctx context.Context, limit int) ([]sales.Order, error) {
	var orders []sales.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("date DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindRecentByCustomer finds the most recent orders of a customer, newest first
func (r *GormOrderRepository) FindRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]sales.Order, error) {
	var orders []sales.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&sales.Order{})
	query = r.applyFilters(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByEmployee counts the orders handled by an employee
func (r *GormOrderRepository) CountByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sales.Order{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumTotalByEmployee sums the order totals handled by an employee
func (r *GormOrderRepository) SumTotalByEmployee(ctx context.Context, employeeID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&sales.Order{}).
		Where("employee_id = ?", employeeID).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SalesByProduct aggregates quantities sold per day for a product.
// Grouping happens in Go; SQL date functions differ between postgres and sqlite.
func (r *GormOrderRepository) SalesByProduct(ctx context.Context, productID uuid.UUID) ([]sales.ProductSales, error) {
	var rows []struct {
		Date     time.Time
		Quantity int
	}
	if err := r.db.WithContext(ctx).
		Model(&sales.OrderItem{}).
		Select("orders.date AS date, order_items.quantity AS quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.product_id = ?", productID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[time.Time]int, len(rows))
	for _, row := range rows {
		day := time.Date(row.Date.Year(), row.Date.Month(), row.Date.Day(), 0, 0, 0, 0, time.UTC)
		totals[day] += row.Quantity
	}

	results := make([]sales.ProductSales, 0, len(totals))
	for day, sold := range totals {
		results = append(results, sales.ProductSales{Date: day, TotalSold: sold})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Date.Before(results[j].Date)
	})
	return results, nil
}

// Save creates or updates an order together with its line items
func (r *GormOrderRepository) Save(ctx context.Context, order *sales.Order) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(order).Error
}

// SaveItem creates or updates a single order line item
func (r *GormOrderRepository) SaveItem(ctx context.Context, item *sales.OrderItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete deletes an order; its items go with it via the cascade constraint
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Select("Items").
		Delete(&sales.Order{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormOrderRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if customerID, ok := filter.Filters["customer_id"]; ok {
		query = query.Where("customer_id = ?", customerID)
	}
	if employeeID, ok := filter.Filters["employee_id"]; ok {
		query = query.Where("employee_id = ?", employeeID)
	}
	if tableID, ok := filter.Filters["table_id"]; ok {
		query = query.Where("table_id = ?", tableID)
	}
	return query
}

// Ensure GormOrderRepository implements OrderRepository
var _ sales.OrderRepository = (*GormOrderRepository)(nil)
