package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/settings"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormUISettingsRepository implements UISettingsRepository using GORM
type GormUISettingsRepository struct {
	db *gorm.DB
}

// NewGormUISettingsRepository creates a new GormUISettingsRepository
func NewGormUISettingsRepository(db *gorm.DB) *GormUISettingsRepository {
	return &GormUISettingsRepository{db: db}
}

func (r *GormUISettingsRepository) FindByID(ctx context.Context, id uuid.UUID) (*settings.UISettings, error) {
	var s settings.UISettings
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormUISettingsRepository) FindAll(ctx context.Context, filter shared.Filter) ([]settings.UISettings, error) {
	var items []settings.UISettings
	query := applyPagination(r.db.WithContext(ctx).Model(&settings.UISettings{}).Order("created_at ASC"), filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormUISettingsRepository) Save(ctx context.Context, s *settings.UISettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *GormUISettingsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&settings.UISettings{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormTemplateRepository implements TemplateRepository using GORM
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GormTemplateRepository
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

func (r *GormTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*settings.Template, error) {
	var t settings.Template
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *GormTemplateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]settings.Template, error) {
	var items []settings.Template
	query := r.db.WithContext(ctx).Model(&settings.Template{})
	query = applySearch(query, filter.Search, "name")
	query = applyPagination(query.Order("name ASC"), filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormTemplateRepository) Save(ctx context.Context, t *settings.Template) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *GormTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&settings.Template{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormPropertySettingsRepository implements PropertySettingsRepository using GORM
type GormPropertySettingsRepository struct {
	db *gorm.DB
}

// NewGormPropertySettingsRepository creates a new GormPropertySettingsRepository
func NewGormPropertySettingsRepository(db *gorm.DB) *GormPropertySettingsRepository {
	return &GormPropertySettingsRepository{db: db}
}

func (r *GormPropertySettingsRepository) FindByID(ctx context.Context, id uuid.UUID) (*settings.PropertySettings, error) {
	var p settings.PropertySettings
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPropertySettingsRepository) FindAll(ctx context.Context, filter shared.Filter) ([]settings.PropertySettings, error) {
	var items []settings.PropertySettings
	query := applyPagination(r.db.WithContext(ctx).Model(&settings.PropertySettings{}).Order("created_at ASC"), filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormPropertySettingsRepository) Save(ctx context.Context, p *settings.PropertySettings) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *GormPropertySettingsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&settings.PropertySettings{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var (
	_ settings.UISettingsRepository       = (*GormUISettingsRepository)(nil)
	_ settings.TemplateRepository         = (*GormTemplateRepository)(nil)
	_ settings.PropertySettingsRepository = (*GormPropertySettingsRepository)(nil)
)
