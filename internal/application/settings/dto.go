package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/settings"
	"github.com/shopspring/decimal"
)

// CreateUISettingsRequest represents a request to create a UI settings record
type CreateUISettingsRequest struct {
	Theme   string `json:"theme" binding:"required,max=50"`
	LogoURL string `json:"logo_url" binding:"max=500"`
}

// UpdateUISettingsRequest represents a request to update a UI settings record
type UpdateUISettingsRequest struct {
	Theme   *string `json:"theme" binding:"omitempty,max=50"`
	LogoURL *string `json:"logo_url" binding:"omitempty,max=500"`
}

// UISettingsResponse represents UI settings in API responses
type UISettingsResponse struct {
	ID        uuid.UUID `json:"id"`
	Theme     string    `json:"theme"`
	LogoURL   string    `json:"logo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTemplateRequest represents a request to create a document template
type CreateTemplateRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Content string `json:"content"`
}

// UpdateTemplateRequest represents a request to update a document template
type UpdateTemplateRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Content *string `json:"content"`
}

// TemplateResponse represents a template in API responses
type TemplateResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePropertySettingsRequest represents a request to create a property settings record
type CreatePropertySettingsRequest struct {
	Name     string          `json:"name" binding:"required,max=255"`
	Address  string          `json:"address"`
	Currency string          `json:"currency" binding:"required,max=10"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
}

// UpdatePropertySettingsRequest represents a request to update a property settings record
type UpdatePropertySettingsRequest struct {
	Name     *string          `json:"name" binding:"omitempty,max=255"`
	Address  *string          `json:"address"`
	Currency *string          `json:"currency" binding:"omitempty,max=10"`
	TaxRate  *decimal.Decimal `json:"tax_rate"`
}

// PropertySettingsResponse represents property settings in API responses
type PropertySettingsResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Currency  string          `json:"currency"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ListFilter represents settings list query options
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
}

// ToUISettingsResponse converts domain UI settings to a response DTO
func ToUISettingsResponse(s *settings.UISettings) UISettingsResponse {
	return UISettingsResponse{
		ID:        s.ID,
		Theme:     s.Theme,
		LogoURL:   s.LogoURL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToUISettingsResponses converts a slice of domain UI settings to response DTOs
func ToUISettingsResponses(items []settings.UISettings) []UISettingsResponse {
	responses := make([]UISettingsResponse, len(items))
	for i := range items {
		responses[i] = ToUISettingsResponse(&items[i])
	}
	return responses
}

// ToTemplateResponse converts a domain template to a response DTO
func ToTemplateResponse(t *settings.Template) TemplateResponse {
	return TemplateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTemplateResponses converts a slice of domain templates to response DTOs
func ToTemplateResponses(items []settings.Template) []TemplateResponse {
	responses := make([]TemplateResponse, len(items))
	for i := range items {
		responses[i] = ToTemplateResponse(&items[i])
	}
	return responses
}

// ToPropertySettingsResponse converts domain property settings to a response DTO
func ToPropertySettingsResponse(p *settings.PropertySettings) PropertySettingsResponse {
	return PropertySettingsResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		Currency:  p.Currency,
		TaxRate:   p.TaxRate,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToPropertySettingsResponses converts a slice of domain property settings to response DTOs
func ToPropertySettingsResponses(items []settings.PropertySettings) []PropertySettingsResponse {
	responses := make([]PropertySettingsResponse, len(items))
	for i := range items {
		responses[i] = ToPropertySettingsResponse(&items[i])
	}
	return responses
}
