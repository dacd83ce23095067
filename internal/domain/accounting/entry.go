package accounting

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EntryType classifies an accounting entry
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// IsValid checks if the type is a known EntryType
func (t EntryType) IsValid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// Entry represents a single income or expense record
type Entry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	EntryType   EntryType       `gorm:"type:varchar(10);not null;index" json:"entry_type"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(500)" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "accounting_entries"
}

// NewEntry creates a new accounting entry
func NewEntry(entryType EntryType, amount decimal.Decimal, description string, date time.Time) (*Entry, error) {
	if !entryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTRY_TYPE", "Entry type must be income or expense")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Entry amount cannot be negative")
	}
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now()
	return &Entry{
		ID:          uuid.New(),
		EntryType:   entryType,
		Amount:      amount,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update corrects a recorded entry
func (e *Entry) Update(entryType EntryType, amount decimal.Decimal, description string, date time.Time) error {
	if !entryType.IsValid() {
		return shared.NewDomainError("INVALID_ENTRY_TYPE", "Entry type must be income or expense")
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Entry amount cannot be negative")
	}
	if date.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Entry date cannot be empty")
	}
	e.EntryType = entryType
	e.Amount = amount
	e.Description = description
	e.Date = date
	e.UpdatedAt = time.Now()
	return nil
}

// Summary aggregates entries into income, expense and net profit totals
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetProfit    decimal.Decimal `json:"net_profit"`
}

// NewSummary builds a summary from the two totals
func NewSummary(totalIncome, totalExpense decimal.Decimal) Summary {
	return Summary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		NetProfit:    totalIncome.Sub(totalExpense),
	}
}
