package accounting

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/accounting"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest represents a request to record an accounting entry.
// Amount is a pointer so an explicit zero passes the required check.
type CreateEntryRequest struct {
	EntryType   string           `json:"entry_type" binding:"required,oneof=income expense"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description string           `json:"description" binding:"max=500"`
	Date        time.Time        `json:"date"`
}

// UpdateEntryRequest represents a request to correct a recorded entry.
// Only fields that are present are changed.
type UpdateEntryRequest struct {
	EntryType   *string          `json:"entry_type" binding:"omitempty,oneof=income expense"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Date        *time.Time       `json:"date"`
}

// EntryListFilter represents accounting entry list query options
type EntryListFilter struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir"`
	Search    string `form:"search"`
	EntryType string `form:"entry_type"`
}

// EntryResponse represents an accounting entry in API responses
type EntryResponse struct {
	ID          uuid.UUID       `json:"id"`
	EntryType   string          `json:"entry_type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SummaryResponse aggregates income, expense and net profit totals
type SummaryResponse struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetProfit    decimal.Decimal `json:"net_profit"`
}

// ToEntryResponse converts a domain entry to a response DTO
func ToEntryResponse(e *accounting.Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		EntryType:   string(e.EntryType),
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToEntryResponses converts a slice of domain entries to response DTOs
func ToEntryResponses(entries []accounting.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
