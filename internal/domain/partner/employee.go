package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// EmployeeRole classifies the job an employee performs
type EmployeeRole string

const (
	EmployeeRoleManager EmployeeRole = "manager"
	EmployeeRoleCashier EmployeeRole = "cashier"
	EmployeeRoleWaiter  EmployeeRole = "waiter"
	EmployeeRoleKitchen EmployeeRole = "kitchen"
)

// IsValid checks if the role is a known EmployeeRole
func (r EmployeeRole) IsValid() bool {
	switch r {
	case EmployeeRoleManager, EmployeeRoleCashier, EmployeeRoleWaiter, EmployeeRoleKitchen:
		return true
	}
	return false
}

// Employee represents a staff member that handles orders
type Employee struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string       `gorm:"type:varchar(255);not null" json:"name"`
	Role      EmployeeRole `gorm:"type:varchar(20);not null" json:"role"`
	Email     string       `gorm:"type:varchar(200)" json:"email"`
	Phone     string       `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new employee
func NewEmployee(name string, role EmployeeRole, email, phone string) (*Employee, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Employee name cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown employee role")
	}

	now := time.Now()
	return &Employee{
		ID:        uuid.New(),
		Name:      name,
		Role:      role,
		Email:     strings.ToLower(email),
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update updates the employee's fields
func (e *Employee) Update(name string, role EmployeeRole, email, phone string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Employee name cannot be empty")
	}
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown employee role")
	}

	e.Name = name
	e.Role = role
	e.Email = strings.ToLower(email)
	e.Phone = phone
	e.UpdatedAt = time.Now()
	return nil
}
