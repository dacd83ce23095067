package purchasing

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
)

// PurchaseOrderRepository defines the persistence interface for purchase orders.
// FindByID loads the order together with its line items.
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)
	FindByStatus(ctx context.Context, status PurchaseOrderStatus, filter shared.Filter) ([]PurchaseOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, order *PurchaseOrder) error
	// SaveReceipt persists the received order and the product stock
	// increments in one transaction, so a partial receipt never lands.
	SaveReceipt(ctx context.Context, order *PurchaseOrder, products []*catalog.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
