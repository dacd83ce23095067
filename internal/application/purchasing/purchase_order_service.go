package purchasing

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/purchasing"
	"github.com/pos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	orderRepo   purchasing.PurchaseOrderRepository
	productRepo catalog.ProductRepository
	stockMirror catalog.StockMirror
	logger      *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orderRepo purchasing.PurchaseOrderRepository,
	productRepo catalog.ProductRepository,
	stockMirror catalog.StockMirror,
	logger *zap.Logger,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		stockMirror: stockMirror,
		logger:      logger,
	}
}

// Create creates a new purchase order in pending status
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := purchasing.NewPurchaseOrder(req.SupplierID, req.ExpectedDeliveryDate)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		if _, err := s.productRepo.FindByID(ctx, item.ProductID); err != nil {
			return nil, err
		}
		if _, err := order.AddItem(item.ProductID, item.Quantity, *item.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, id uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders with filtering and pagination
func (s *PurchaseOrderService) List(ctx context.Context, filter PurchaseOrderListFilter) (*shared.Paginated[PurchaseOrderResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.SupplierID != "" {
		domainFilter.Filters["supplier_id"] = filter.SupplierID
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	paginated := shared.NewPaginated(ToPurchaseOrderResponses(orders), total, domainFilter.Page, domainFilter.PageSize)
	return &paginated, nil
}

// Update edits a pending purchase order's header fields
func (s *PurchaseOrderService) Update(ctx context.Context, id uuid.UUID, req UpdatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplierID := order.SupplierID
	if req.SupplierID != nil {
		supplierID = *req.SupplierID
	}
	expectedDeliveryDate := order.ExpectedDeliveryDate
	if req.ExpectedDeliveryDate != nil {
		expectedDeliveryDate = *req.ExpectedDeliveryDate
	}

	if err := order.Update(supplierID, expectedDeliveryDate); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// AddItem adds a line item to a pending purchase order
func (s *PurchaseOrderService) AddItem(ctx context.Context, id uuid.UUID, req AddPurchaseOrderItemRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	if _, err := order.AddItem(req.ProductID, req.Quantity, *req.UnitPrice); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Receive marks a pending purchase order as received and adds each line
// item's quantity to the matching product's stock. Order and stock changes
// are committed together; mirror publishes happen after the commit and a
// failure there is logged, not rolled back.
func (s *PurchaseOrderService) Receive(ctx context.Context, id uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.MarkReceived(); err != nil {
		return nil, err
	}

	// Accumulate per-product deltas so an order with two lines for the
	// same product applies both.
	products := make([]*catalog.Product, 0, len(order.Items))
	byID := make(map[uuid.UUID]*catalog.Product, len(order.Items))
	for _, item := range order.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			product, err = s.productRepo.FindByID(ctx, item.ProductID)
			if err != nil {
				return nil, err
			}
			byID[item.ProductID] = product
			products = append(products, product)
		}
		if err := product.AdjustStock(item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.SaveReceipt(ctx, order, products); err != nil {
		return nil, err
	}

	for _, product := range products {
		if err := s.stockMirror.PublishStock(ctx, product.ID, product.StockQuantity); err != nil {
			s.logger.Warn("Failed to mirror stock level after receipt",
				zap.String("purchase_order_id", order.ID.String()),
				zap.String("product_id", product.ID.String()),
				zap.Int("stock_quantity", product.StockQuantity),
				zap.Error(err),
			)
		}
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Cancel cancels a pending purchase order
func (s *PurchaseOrderService) Cancel(ctx context.Context, id uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.Cancel(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Delete deletes a purchase order
func (s *PurchaseOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.Delete(ctx, id)
}
