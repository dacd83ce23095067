package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultReorderLevel is applied when a product is created without an explicit threshold
const DefaultReorderLevel = 10

// Product represents a sellable item tracked in inventory
type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	SKU           string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"sku"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	ReorderLevel  int             `gorm:"not null;default:10" json:"reorder_level"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description, sku string, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if strings.TrimSpace(sku) == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "Product SKU cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}

	now := time.Now()
	return &Product{
		ID:            uuid.New(),
		Name:          name,
		Description:   description,
		SKU:           strings.TrimSpace(sku),
		Price:         price,
		StockQuantity: 0,
		ReorderLevel:  DefaultReorderLevel,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Update updates the product's descriptive fields
func (p *Product) Update(name, description string, price decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}

// SetReorderLevel sets the stock threshold below which the product should be reordered
func (p *Product) SetReorderLevel(level int) error {
	if level < 0 {
		return shared.NewDomainError("INVALID_REORDER_LEVEL", "Reorder level cannot be negative")
	}
	p.ReorderLevel = level
	p.UpdatedAt = time.Now()
	return nil
}

// AdjustStock applies a signed quantity delta to the stock level.
// A delta that would drive the stock below zero is rejected and the
// stock is left unchanged.
func (p *Product) AdjustStock(delta int) error {
	newStock := p.StockQuantity + delta
	if newStock < 0 {
		return shared.ErrInsufficientStock
	}
	p.StockQuantity = newStock
	p.UpdatedAt = time.Now()
	return nil
}

// IsBelowReorderLevel reports whether the stock has fallen below the reorder threshold
func (p *Product) IsBelowReorderLevel() bool {
	return p.StockQuantity < p.ReorderLevel
}
