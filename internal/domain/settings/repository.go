package settings

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// UISettingsRepository defines the persistence interface for UI settings
type UISettingsRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UISettings, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]UISettings, error)
	Save(ctx context.Context, s *UISettings) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TemplateRepository defines the persistence interface for templates
type TemplateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Template, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Template, error)
	Save(ctx context.Context, t *Template) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PropertySettingsRepository defines the persistence interface for property settings
type PropertySettingsRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertySettings, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PropertySettings, error)
	Save(ctx context.Context, p *PropertySettings) error
	Delete(ctx context.Context, id uuid.UUID) error
}
