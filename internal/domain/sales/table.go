package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// Table represents a physical table in the venue
type Table struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Number    int       `gorm:"not null;uniqueIndex" json:"number"`
	Seats     int       `gorm:"not null" json:"seats"`
	Occupied  bool      `gorm:"not null;default:false" json:"occupied"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Table) TableName() string {
	return "tables"
}

// NewTable creates a new table
func NewTable(number, seats int) (*Table, error) {
	if number <= 0 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Table number must be positive")
	}
	if seats <= 0 {
		return nil, shared.NewDomainError("INVALID_SEATS", "Seat count must be positive")
	}

	now := time.Now()
	return &Table{
		ID:        uuid.New(),
		Number:    number,
		Seats:     seats,
		Occupied:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update updates the table's fields
func (t *Table) Update(number, seats int, occupied bool) error {
	if number <= 0 {
		return shared.NewDomainError("INVALID_NUMBER", "Table number must be positive")
	}
	if seats <= 0 {
		return shared.NewDomainError("INVALID_SEATS", "Seat count must be positive")
	}

	t.Number = number
	t.Seats = seats
	t.Occupied = occupied
	t.UpdatedAt = time.Now()
	return nil
}
