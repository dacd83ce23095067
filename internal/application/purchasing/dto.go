package purchasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/purchasing"
	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest represents a line item in a create request.
// UnitPrice is a pointer so an explicit zero passes the required check.
type PurchaseOrderItemRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierID           uuid.UUID                  `json:"supplier_id" binding:"required"`
	ExpectedDeliveryDate time.Time                  `json:"expected_delivery_date"`
	Items                []PurchaseOrderItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdatePurchaseOrderRequest represents a request to edit a pending purchase
// order. Only fields that are present are changed.
type UpdatePurchaseOrderRequest struct {
	SupplierID           *uuid.UUID `json:"supplier_id"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`
}

// AddPurchaseOrderItemRequest represents a request to add a line item
type AddPurchaseOrderItemRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price" binding:"required"`
}

// PurchaseOrderListFilter represents purchase order list query options
type PurchaseOrderListFilter struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir"`
	Status     string `form:"status"`
	SupplierID string `form:"supplier_id"`
}

// PurchaseOrderItemResponse represents a line item in API responses
type PurchaseOrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID                   uuid.UUID                   `json:"id"`
	SupplierID           uuid.UUID                   `json:"supplier_id"`
	OrderDate            time.Time                   `json:"order_date"`
	ExpectedDeliveryDate time.Time                   `json:"expected_delivery_date"`
	Status               string                      `json:"status"`
	TotalAmount          decimal.Decimal             `json:"total_amount"`
	Items                []PurchaseOrderItemResponse `json:"items"`
	CreatedAt            time.Time                   `json:"created_at"`
	UpdatedAt            time.Time                   `json:"updated_at"`
}

// ToPurchaseOrderResponse converts a domain purchase order to a response DTO
func ToPurchaseOrderResponse(po *purchasing.PurchaseOrder) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, len(po.Items))
	for i, item := range po.Items {
		items[i] = PurchaseOrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
	}
	return PurchaseOrderResponse{
		ID:                   po.ID,
		SupplierID:           po.SupplierID,
		OrderDate:            po.OrderDate,
		ExpectedDeliveryDate: po.ExpectedDeliveryDate,
		Status:               po.Status.String(),
		TotalAmount:          po.TotalAmount(),
		Items:                items,
		CreatedAt:            po.CreatedAt,
		UpdatedAt:            po.UpdatedAt,
	}
}

// ToPurchaseOrderResponses converts a slice of domain purchase orders to response DTOs
func ToPurchaseOrderResponses(orders []purchasing.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return responses
}
