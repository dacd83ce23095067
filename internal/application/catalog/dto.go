package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product.
// Price is a pointer so an explicit zero passes the required check.
type CreateProductRequest struct {
	Name         string           `json:"name" binding:"required,min=1,max=255"`
	Description  string           `json:"description"`
	SKU          string           `json:"sku" binding:"required,min=1,max=50"`
	Price        *decimal.Decimal `json:"price" binding:"required"`
	ReorderLevel *int             `json:"reorder_level"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	ReorderLevel *int             `json:"reorder_level"`
}

// AdjustStockRequest represents a signed stock adjustment. Quantity is the
// delta to apply, not the new level; a pointer so zero is distinguishable
// from a missing field.
type AdjustStockRequest struct {
	Delta *int `json:"quantity" binding:"required"`
}

// ProductListFilter represents product list query options
type ProductListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	SKU               string          `json:"sku"`
	Price             decimal.Decimal `json:"price"`
	StockQuantity     int             `json:"stock_quantity"`
	ReorderLevel      int             `json:"reorder_level"`
	BelowReorderLevel bool            `json:"below_reorder_level"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		SKU:               p.SKU,
		Price:             p.Price,
		StockQuantity:     p.StockQuantity,
		ReorderLevel:      p.ReorderLevel,
		BelowReorderLevel: p.IsBelowReorderLevel(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain products to response DTOs
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
