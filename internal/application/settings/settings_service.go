package settings

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/settings"
	"github.com/pos/backend/internal/domain/shared"
)

func buildDomainFilter(filter ListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	return domainFilter
}

// UISettingsService handles UI settings operations
type UISettingsService struct {
	repo settings.UISettingsRepository
}

// NewUISettingsService creates a new UISettingsService
func NewUISettingsService(repo settings.UISettingsRepository) *UISettingsService {
	return &UISettingsService{repo: repo}
}

// Create creates a new UI settings record
func (s *UISettingsService) Create(ctx context.Context, req CreateUISettingsRequest) (*UISettingsResponse, error) {
	record, err := settings.NewUISettings(req.Theme, req.LogoURL)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	response := ToUISettingsResponse(record)
	return &response, nil
}

// GetByID retrieves a UI settings record by ID
func (s *UISettingsService) GetByID(ctx context.Context, id uuid.UUID) (*UISettingsResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToUISettingsResponse(record)
	return &response, nil
}

// List retrieves UI settings records
func (s *UISettingsService) List(ctx context.Context, filter ListFilter) ([]UISettingsResponse, error) {
	records, err := s.repo.FindAll(ctx, buildDomainFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToUISettingsResponses(records), nil
}

// Update updates a UI settings record
func (s *UISettingsService) Update(ctx context.Context, id uuid.UUID, req UpdateUISettingsRequest) (*UISettingsResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	theme := record.Theme
	if req.Theme != nil {
		theme = *req.Theme
	}
	logoURL := record.LogoURL
	if req.LogoURL != nil {
		logoURL = *req.LogoURL
	}

	if err := record.Update(theme, logoURL); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	response := ToUISettingsResponse(record)
	return &response, nil
}

// Delete removes a UI settings record
func (s *UISettingsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// TemplateService handles document template operations
type TemplateService struct {
	repo settings.TemplateRepository
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(repo settings.TemplateRepository) *TemplateService {
	return &TemplateService{repo: repo}
}

// Create creates a new template
func (s *TemplateService) Create(ctx context.Context, req CreateTemplateRequest) (*TemplateResponse, error) {
	record, err := settings.NewTemplate(req.Name, req.Content)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	response := ToTemplateResponse(record)
	return &response, nil
}

// GetByID retrieves a template by ID
func (s *TemplateService) GetByID(ctx context.Context, id uuid.UUID) (*TemplateResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToTemplateResponse(record)
	return &response, nil
}

// List retrieves templates
func (s *TemplateService) List(ctx context.Context, filter ListFilter) ([]TemplateResponse, error) {
	records, err := s.repo.FindAll(ctx, buildDomainFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToTemplateResponses(records), nil
}

// Update updates a template
func (s *TemplateService) Update(ctx context.Context, id uuid.UUID, req UpdateTemplateRequest) (*TemplateResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := record.Name
	if req.Name != nil {
		name = *req.Name
	}
	content := record.Content
	if req.Content != nil {
		content = *req.Content
	}

	if err := record.Update(name, content); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	response := ToTemplateResponse(record)
	return &response, nil
}

// Delete removes a template
func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// PropertySettingsService handles venue configuration operations
type PropertySettingsService struct {
	repo settings.PropertySettingsRepository
}

// NewPropertySettingsService creates a new PropertySettingsService
func NewPropertySettingsService(repo settings.PropertySettingsRepository) *PropertySettingsService {
	return &PropertySettingsService{repo: repo}
}

// Create creates a new property settings record
func (s *PropertySettingsService) Create(ctx context.Context, req CreatePropertySettingsRequest) (*PropertySettingsResponse, error) {
	record, err := settings.NewPropertySettings(req.Name, req.Address, req.Currency, req.TaxRate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	response := ToPropertySettingsResponse(record)
	return &response, nil
}

// GetByID retrieves a property settings record by ID
func (s *PropertySettingsService) GetByID(ctx context.Context, id uuid.UUID) (*PropertySettingsResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPropertySettingsResponse(record)
	return &response, nil
}

// List retrieves property settings records
func (s *PropertySettingsService) List(ctx context.Context, filter ListFilter) ([]PropertySettingsResponse, error) {
	records, err := s.repo.FindAll(ctx, buildDomainFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToPropertySettingsResponses(records), nil
}

// Update updates a property settings record
func (s *PropertySettingsService) Update(ctx context.Context, id uuid.UUID, req UpdatePropertySettingsRequest) (*PropertySettingsResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := record.Name
	if req.Name != nil {
		name = *req.Name
	}
	address := record.Address
	if req.Address != nil {
		address = *req.Address
	}
	currency := record.Currency
	if req.Currency != nil {
		currency = *req.Currency
	}
	taxRate := record.TaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	if err := record.Update(name, address, currency, taxRate); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	response := ToPropertySettingsResponse(record)
	return &response, nil
}

// Delete removes a property settings record
func (s *PropertySettingsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
