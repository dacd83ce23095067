package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// UISettings holds display preferences for the POS frontend
type UISettings struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Theme     string    `gorm:"type:varchar(50);not null" json:"theme"`
	LogoURL   string    `gorm:"type:varchar(500)" json:"logo_url"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (UISettings) TableName() string {
	return "ui_settings"
}

// NewUISettings creates a new UI settings record
func NewUISettings(theme, logoURL string) (*UISettings, error) {
	if theme == "" {
		return nil, shared.NewDomainError("INVALID_THEME", "Theme cannot be empty")
	}
	now := time.Now()
	return &UISettings{
		ID:        uuid.New(),
		Theme:     theme,
		LogoURL:   logoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update updates the settings fields
func (s *UISettings) Update(theme, logoURL string) error {
	if theme == "" {
		return shared.NewDomainError("INVALID_THEME", "Theme cannot be empty")
	}
	s.Theme = theme
	s.LogoURL = logoURL
	s.UpdatedAt = time.Now()
	return nil
}

// Template holds a named document template (receipts, menus)
type Template struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Template) TableName() string {
	return "templates"
}

// NewTemplate creates a new template
func NewTemplate(name, content string) (*Template, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	now := time.Now()
	return &Template{
		ID:        uuid.New(),
		Name:      name,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update updates the template fields
func (t *Template) Update(name, content string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	t.Name = name
	t.Content = content
	t.UpdatedAt = time.Now()
	return nil
}

// PropertySettings holds venue-level configuration
type PropertySettings struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Address   string          `gorm:"type:text" json:"address"`
	Currency  string          `gorm:"type:varchar(10);not null" json:"currency"`
	TaxRate   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"tax_rate"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (PropertySettings) TableName() string {
	return "property_settings"
}

// NewPropertySettings creates a new property settings record
func NewPropertySettings(name, address, currency string, taxRate decimal.Decimal) (*PropertySettings, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Property name cannot be empty")
	}
	if currency == "" {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency cannot be empty")
	}
	if taxRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TAX_RATE", "Tax rate cannot be negative")
	}
	now := time.Now()
	return &PropertySettings{
		ID:        uuid.New(),
		Name:      name,
		Address:   address,
		Currency:  currency,
		TaxRate:   taxRate,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update updates the property settings fields
func (p *PropertySettings) Update(name, address, currency string, taxRate decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Property name cannot be empty")
	}
	if currency == "" {
		return shared.NewDomainError("INVALID_CURRENCY", "Currency cannot be empty")
	}
	if taxRate.IsNegative() {
		return shared.NewDomainError("INVALID_TAX_RATE", "Tax rate cannot be negative")
	}
	p.Name = name
	p.Address = address
	p.Currency = currency
	p.TaxRate = taxRate
	p.UpdatedAt = time.Now()
	return nil
}
