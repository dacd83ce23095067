package purchasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "pending"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusPending, PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Only pending orders may move; received and cancelled are terminal.
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	if s != PurchaseOrderStatusPending {
		return false
	}
	return target == PurchaseOrderStatusReceived || target == PurchaseOrderStatusCancelled
}

// PurchaseOrderItem represents a line item in a purchase order
type PurchaseOrderItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// NewPurchaseOrderItem creates a new purchase order line item
func NewPurchaseOrderItem(purchaseOrderID, productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*PurchaseOrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &PurchaseOrderItem{
		ID:              uuid.New(),
		PurchaseOrderID: purchaseOrderID,
		ProductID:       productID,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// PurchaseOrder represents an order placed with a supplier
type PurchaseOrder struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID           uuid.UUID           `gorm:"type:uuid;not null;index" json:"supplier_id"`
	OrderDate            time.Time           `gorm:"not null" json:"order_date"`
	ExpectedDeliveryDate time.Time           `json:"expected_delivery_date"`
	Status               PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Items                []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt            time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time           `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a new purchase order in pending status.
// The order date is set at creation time.
func NewPurchaseOrder(supplierID uuid.UUID, expectedDeliveryDate time.Time) (*PurchaseOrder, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}

	now := time.Now()
	return &PurchaseOrder{
		ID:                   uuid.New(),
		SupplierID:           supplierID,
		OrderDate:            now,
		ExpectedDeliveryDate: expectedDeliveryDate,
		Status:               PurchaseOrderStatusPending,
		Items:                []PurchaseOrderItem{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}, nil
}

// AddItem appends a line item to the order
func (po *PurchaseOrder) AddItem(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*PurchaseOrderItem, error) {
	if po.Status != PurchaseOrderStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending purchase order")
	}

	item, err := NewPurchaseOrderItem(po.ID, productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	po.Items = append(po.Items, *item)
	po.UpdatedAt = time.Now()
	return item, nil
}

// Update changes the supplier and expected delivery date.
// Received and cancelled orders can no longer be edited.
func (po *PurchaseOrder) Update(supplierID uuid.UUID, expectedDeliveryDate time.Time) error {
	if po.Status != PurchaseOrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot edit a non-pending purchase order")
	}
	if supplierID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	po.SupplierID = supplierID
	po.ExpectedDeliveryDate = expectedDeliveryDate
	po.UpdatedAt = time.Now()
	return nil
}

// MarkReceived transitions the order to received
func (po *PurchaseOrder) MarkReceived() error {
	if !po.Status.CanTransitionTo(PurchaseOrderStatusReceived) {
		return shared.NewDomainError("INVALID_STATE", "Only pending purchase orders can be received")
	}
	po.Status = PurchaseOrderStatusReceived
	po.UpdatedAt = time.Now()
	return nil
}

// Cancel transitions the order to cancelled
func (po *PurchaseOrder) Cancel() error {
	if !po.Status.CanTransitionTo(PurchaseOrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", "Only pending purchase orders can be cancelled")
	}
	po.Status = PurchaseOrderStatusCancelled
	po.UpdatedAt = time.Now()
	return nil
}

// TotalAmount returns the sum of quantity * unit price over all items
func (po *PurchaseOrder) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range po.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
