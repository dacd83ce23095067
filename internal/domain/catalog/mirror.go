package catalog

import (
	"context"

	"github.com/google/uuid"
)

// StockMirror publishes stock levels to a realtime store so connected
// clients can observe inventory changes without polling the API.
// Publishing the same product twice overwrites the previous value.
type StockMirror interface {
	PublishStock(ctx context.Context, productID uuid.UUID, stockQuantity int) error
}
