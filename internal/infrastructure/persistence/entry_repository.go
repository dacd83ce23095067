package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/accounting"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var entrySortColumns = map[string]bool{
	"date":       true,
	"amount":     true,
	"entry_type": true,
	"created_at": true,
}

// GormEntryRepository implements EntryRepository using GORM
type GormEntryRepository struct {
	db *gorm.DB
}

// NewGormEntryRepository creates a new GormEntryRepository
func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

// FindByID finds an accounting entry by its ID
func (r *GormEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.Entry, error) {
	var entry accounting.Entry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindAll finds all accounting entries matching the filter
func (r *GormEntryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]accounting.Entry, error) {
	var entries []accounting.Entry
	query := r.db.WithContext(ctx).Model(&accounting.Entry{})
	query = applySearch(query, filter.Search, "description")
	if entryType, ok := filter.Filters["entry_type"]; ok {
		query = query.Where("entry_type = ?", entryType)
	}
	query = applyOrdering(query, filter, entrySortColumns, "date DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Count counts accounting entries matching the filter
func (r *GormEntryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&accounting.Entry{})
	query = applySearch(query, filter.Search, "description")
	if entryType, ok := filter.Filters["entry_type"]; ok {
		query = query.Where("entry_type = ?", entryType)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumByType sums the amounts of all entries of the given type.
// Returns zero when no entries exist.
func (r *GormEntryRepository) SumByType(ctx context.Context, entryType accounting.EntryType) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&accounting.Entry{}).
		Where("entry_type = ?", entryType).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Save creates or updates an accounting entry
func (r *GormEntryRepository) Save(ctx context.Context, entry *accounting.Entry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete deletes an accounting entry
func (r *GormEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&accounting.Entry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormEntryRepository implements EntryRepository
var _ accounting.EntryRepository = (*GormEntryRepository)(nil)
