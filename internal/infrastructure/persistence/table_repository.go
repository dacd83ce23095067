package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var tableSortColumns = map[string]bool{
	"number":     true,
	"seats":      true,
	"created_at": true,
}

// GormTableRepository implements TableRepository using GORM
type GormTableRepository struct {
	db *gorm.DB
}

// NewGormTableRepository creates a new GormTableRepository
func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

// FindByID finds a table by its ID
func (r *GormTableRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Table, error) {
	var table sales.Table
	if err := r.db.WithContext(ctx).First(&table, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

// FindAll finds all tables matching the filter
func (r *GormTableRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Table, error) {
	var tables []sales.Table
	query := r.db.WithContext(ctx).Model(&sales.Table{})
	if occupied, ok := filter.Filters["occupied"]; ok {
		query = query.Where("occupied = ?", occupied)
	}
	query = applyOrdering(query, filter, tableSortColumns, "number ASC")
	query = applyPagination(query, filter)

	if err := query.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// Count counts tables matching the filter
func (r *GormTableRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&sales.Table{})
	if occupied, ok := filter.Filters["occupied"]; ok {
		query = query.Where("occupied = ?", occupied)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a table
func (r *GormTableRepository) Save(ctx context.Context, table *sales.Table) error {
	return r.db.WithContext(ctx).Save(table).Error
}

// Delete deletes a table
func (r *GormTableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&sales.Table{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormTableRepository implements TableRepository
var _ sales.TableRepository = (*GormTableRepository)(nil)
