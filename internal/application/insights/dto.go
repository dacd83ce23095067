package insights

import (
	"context"

	"github.com/google/uuid"
)

// Completer is the generative-text capability the insight workflows depend on.
// Implementations submit a prompt with an output token budget and return the
// completion text.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// InsightResponse carries a free-text insight
type InsightResponse struct {
	Insight string `json:"insight"`
}

// RecommendationsResponse carries a list of product recommendations for a customer
type RecommendationsResponse struct {
	CustomerID      uuid.UUID `json:"customer_id"`
	Recommendations []string  `json:"recommendations"`
}

// OptimizeResponse carries a suggested stock level for a product
type OptimizeResponse struct {
	ProductID        uuid.UUID `json:"product_id"`
	RecommendedStock int       `json:"recommended_stock"`
}

// PerformanceResponse carries an employee performance review
type PerformanceResponse struct {
	EmployeeID  uuid.UUID `json:"employee_id"`
	OrderCount  int64     `json:"order_count"`
	TotalSales  string    `json:"total_sales"`
	Performance string    `json:"performance"`
}
