package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// Supplier represents a vendor that purchase orders are placed with
type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	ContactPerson string    `gorm:"type:varchar(255)" json:"contact_person"`
	Email         string    `gorm:"type:varchar(200)" json:"email"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone"`
	Address       string    `gorm:"type:text" json:"address"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name, contactPerson, email, phone, address string) (*Supplier, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}

	now := time.Now()
	return &Supplier{
		ID:            uuid.New(),
		Name:          name,
		ContactPerson: contactPerson,
		Email:         strings.ToLower(email),
		Phone:         phone,
		Address:       address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Update updates the supplier's fields
func (s *Supplier) Update(name, contactPerson, email, phone, address string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}

	s.Name = name
	s.ContactPerson = contactPerson
	s.Email = strings.ToLower(email)
	s.Phone = phone
	s.Address = address
	s.UpdatedAt = time.Now()
	return nil
}
