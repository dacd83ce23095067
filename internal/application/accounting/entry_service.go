package accounting

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/accounting"
	"github.com/pos/backend/internal/domain/shared"
)

// EntryService handles accounting entry operations and summaries
type EntryService struct {
	entryRepo accounting.EntryRepository
}

// NewEntryService creates a new EntryService
func NewEntryService(entryRepo accounting.EntryRepository) *EntryService {
	return &EntryService{entryRepo: entryRepo}
}

// Create records a new accounting entry
func (s *EntryService) Create(ctx context.Context, req CreateEntryRequest) (*EntryResponse, error) {
	entry, err := accounting.NewEntry(accounting.EntryType(req.EntryType), *req.Amount, req.Description, req.Date)
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

// GetByID retrieves an accounting entry by ID
func (s *EntryService) GetByID(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

// List retrieves accounting entries with filtering and pagination
func (s *EntryService) List(ctx context.Context, filter EntryListFilter) (*shared.Paginated[EntryResponse], error) {
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
	if filter.EntryType != "" {
		domainFilter.Filters["entry_type"] = filter.EntryType
	}

	entries, err := s.entryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.entryRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	paginated := shared.NewPaginated(ToEntryResponses(entries), total, domainFilter.Page, domainFilter.PageSize)
	return &paginated, nil
}

// Update corrects a recorded accounting entry
func (s *EntryService) Update(ctx context.Context, id uuid.UUID, req UpdateEntryRequest) (*EntryResponse, error) {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entryType := entry.EntryType
	if req.EntryType != nil {
		entryType = accounting.EntryType(*req.EntryType)
	}
	amount := entry.Amount
	if req.Amount != nil {
		amount = *req.Amount
	}
	description := entry.Description
	if req.Description != nil {
		description = *req.Description
	}
	date := entry.Date
	if req.Date != nil {
		date = *req.Date
	}

	if err := entry.Update(entryType, amount, description, date); err != nil {
		return nil, err
	}

	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

// Summary aggregates all entries into income, expense and net profit totals.
// Amounts default to zero when no entries of a type exist.
func (s *EntryService) Summary(ctx context.Context) (*SummaryResponse, error) {
	income, err := s.entryRepo.SumByType(ctx, accounting.EntryTypeIncome)
	if err != nil {
		return nil, err
	}

	expense, err := s.entryRepo.SumByType(ctx, accounting.EntryTypeExpense)
	if err != nil {
		return nil, err
	}

	summary := accounting.NewSummary(income, expense)
	return &SummaryResponse{
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		NetProfit:    summary.NetProfit,
	}, nil
}

// Delete removes an accounting entry
func (s *EntryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.entryRepo.Delete(ctx, id)
}
