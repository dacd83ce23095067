package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Order DTOs
// =============================================================================

// OrderItemRequest represents a line item in an order request
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	CustomerID *uuid.UUID         `json:"customer_id"`
	EmployeeID *uuid.UUID         `json:"employee_id"`
	TableID    *uuid.UUID         `json:"table_id"`
	Items      []OrderItemRequest `json:"items" binding:"omitempty,dive"`
}

// AddOrderItemRequest represents a request to append a line item to an order
type AddOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// UpdateOrderRequest represents a request to edit an order's header fields.
// Only fields that are present are changed.
type UpdateOrderRequest struct {
	CustomerID *uuid.UUID `json:"customer_id"`
	EmployeeID *uuid.UUID `json:"employee_id"`
	TableID    *uuid.UUID `json:"table_id"`
	Date       *time.Time `json:"date"`
	Status     *string    `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

// UpdateOrderStatusRequest represents a request to change an order's status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed cancelled"`
}

// OrderListFilter represents order list query options
type OrderListFilter struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir"`
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	EmployeeID string `form:"employee_id"`
	TableID    string `form:"table_id"`
}

// OrderItemResponse represents an order line item in API responses
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	CustomerID  *uuid.UUID          `json:"customer_id"`
	EmployeeID  *uuid.UUID          `json:"employee_id"`
	TableID     *uuid.UUID          `json:"table_id"`
	Date        time.Time           `json:"date"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(o *sales.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Amount:    item.Amount(),
		}
	}
	return OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		EmployeeID:  o.EmployeeID,
		TableID:     o.TableID,
		Date:        o.Date,
		Status:      o.Status.String(),
		TotalAmount: o.TotalAmount,
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of domain orders to response DTOs
func ToOrderResponses(orders []sales.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}

// =============================================================================
// Table DTOs
// =============================================================================

// CreateTableRequest represents a request to create a table
type CreateTableRequest struct {
	Number int `json:"number" binding:"required,gt=0"`
	Seats  int `json:"seats" binding:"required,gt=0"`
}

// UpdateTableRequest represents a request to update a table
type UpdateTableRequest struct {
	Number   *int  `json:"number" binding:"omitempty,gt=0"`
	Seats    *int  `json:"seats" binding:"omitempty,gt=0"`
	Occupied *bool `json:"occupied"`
}

// TableResponse represents a table in API responses
type TableResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    int       `json:"number"`
	Seats     int       `json:"seats"`
	Occupied  bool      `json:"occupied"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTableResponse converts a domain table to a response DTO
func ToTableResponse(t *sales.Table) TableResponse {
	return TableResponse{
		ID:        t.ID,
		Number:    t.Number,
		Seats:     t.Seats,
		Occupied:  t.Occupied,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTableResponses converts a slice of domain tables to response DTOs
func ToTableResponses(tables []sales.Table) []TableResponse {
	responses := make([]TableResponse, len(tables))
	for i := range tables {
		responses[i] = ToTableResponse(&tables[i])
	}
	return responses
}

// =============================================================================
// Payment DTOs
// =============================================================================

// CreatePaymentRequest represents a request to record a payment.
// Amount is a pointer so binding can tell a missing field from zero;
// the domain still rejects non-positive amounts.
type CreatePaymentRequest struct {
	OrderID uuid.UUID        `json:"order_id" binding:"required"`
	Amount  *decimal.Decimal `json:"amount" binding:"required"`
	Method  string           `json:"method" binding:"required,oneof=cash card mobile"`
}

// UpdatePaymentRequest represents a request to correct a recorded payment.
// Only fields that are present are changed.
type UpdatePaymentRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Method *string          `json:"method" binding:"omitempty,oneof=cash card mobile"`
	PaidAt *time.Time       `json:"paid_at"`
}

// PaymentListFilter represents payment list query options
type PaymentListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Method   string `form:"method"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	PaidAt    time.Time       `json:"paid_at"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToPaymentResponse converts a domain payment to a response DTO
func ToPaymentResponse(p *sales.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Method:    string(p.Method),
		PaidAt:    p.PaidAt,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToPaymentResponses converts a slice of domain payments to response DTOs
func ToPaymentResponses(payments []sales.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
