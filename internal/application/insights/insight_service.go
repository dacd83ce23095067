package insights

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Output token budgets per workflow
const (
	salesTrendsMaxTokens     = 200
	recommendationsMaxTokens = 100
	optimizeMaxTokens        = 50
	performanceMaxTokens     = 200
)

const (
	recentOrdersLimit   = 100
	customerOrdersLimit = 10
)

// InsightService renders recent domain records into prompts and delegates the
// analysis to a generative-text completer. Completer failures are surfaced as
// dependency errors, never retried.
type InsightService struct {
	orderRepo    sales.OrderRepository
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	employeeRepo partner.EmployeeRepository
	completer    Completer
	logger       *zap.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(
	orderRepo sales.OrderRepository,
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	employeeRepo partner.EmployeeRepository,
	completer Completer,
	logger *zap.Logger,
) *InsightService {
	return &InsightService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		completer:    completer,
		logger:       logger,
	}
}

// SalesTrends analyzes the most recent orders and returns a free-text summary
// of notable sales patterns.
func (s *InsightService) SalesTrends(ctx context.Context) (*InsightResponse, error) {
	orders, err := s.orderRepo.FindRecent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("Analyze the sales data below and describe notable trends in a short paragraph.\n\n")
	fmt.Fprintf(&b, "Recent orders (%d):\n", len(orders))
	for i := range orders {
		o := &orders[i]
		fmt.Fprintf(&b, "- %s: total %s, status %s, %d items\n",
			o.Date.Format("2006-01-02"), o.TotalAmount.StringFixed(2), o.Status, len(o.Items))
	}

	text, err := s.complete(ctx, "sales trends", b.String(), salesTrendsMaxTokens)
	if err != nil {
		return nil, err
	}

	return &InsightResponse{Insight: text}, nil
}

// CustomerRecommendations builds product recommendations from a customer's
// recent order history. The completion is split into one recommendation per
// non-empty line.
func (s *InsightService) CustomerRecommendations(ctx context.Context, customerID uuid.UUID) (*RecommendationsResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindRecentByCustomer(ctx, customerID, customerOrdersLimit)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Suggest products for customer %s based on their purchase history. Return one suggestion per line.\n\n", customer.Name)
	b.WriteString("Purchase history:\n")
	names := make(map[uuid.UUID]string)
	for i := range orders {
		o := &orders[i]
		fmt.Fprintf(&b, "- order on %s:\n", o.Date.Format("2006-01-02"))
		for j := range o.Items {
			item := &o.Items[j]
			name, ok := names[item.ProductID]
			if !ok {
				product, err := s.productRepo.FindByID(ctx, item.ProductID)
				if err != nil {
					return nil, err
				}
				name = product.Name
				names[item.ProductID] = name
			}
			fmt.Fprintf(&b, "  - %dx %s\n", item.Quantity, name)
		}
	}

	text, err := s.complete(ctx, "customer recommendations", b.String(), recommendationsMaxTokens)
	if err != nil {
		return nil, err
	}

	return &RecommendationsResponse{
		CustomerID:      customerID,
		Recommendations: splitLines(text),
	}, nil
}

// OptimizeInventory asks for a recommended stock level for a product based on
// its per-day sales history. The completion must contain an integer.
func (s *InsightService) OptimizeInventory(ctx context.Context, productID uuid.UUID) (*OptimizeResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	history, err := s.orderRepo.SalesByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Given the sales history for product %q (current stock %d), respond with a single integer: the recommended stock level.\n\n", product.Name, product.StockQuantity)
	b.WriteString("Sales by day:\n")
	for _, day := range history {
		fmt.Fprintf(&b, "- %s: %d sold\n", day.Date.Format("2006-01-02"), day.TotalSold)
	}

	text, err := s.complete(ctx, "inventory optimization", b.String(), optimizeMaxTokens)
	if err != nil {
		return nil, err
	}

	recommended, err := parseLeadingInt(text)
	if err != nil {
		s.logger.Warn("unparsable completion for inventory optimization",
			zap.String("product_id", productID.String()),
			zap.String("completion", text))
		return nil, shared.ErrDependencyUnavailable
	}

	return &OptimizeResponse{
		ProductID:        productID,
		RecommendedStock: recommended,
	}, nil
}

// EmployeePerformance summarizes an employee's order volume and sales total
// into a short review.
func (s *InsightService) EmployeePerformance(ctx context.Context, employeeID uuid.UUID) (*PerformanceResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	count, err := s.orderRepo.CountByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.SumTotalByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a short performance review for employee %s (%s).\n", employee.Name, employee.Role)
	fmt.Fprintf(&b, "Orders handled: %d\n", count)
	fmt.Fprintf(&b, "Total sales: %s\n", total.StringFixed(2))

	text, err := s.complete(ctx, "employee performance", b.String(), performanceMaxTokens)
	if err != nil {
		return nil, err
	}

	return &PerformanceResponse{
		EmployeeID:  employeeID,
		OrderCount:  count,
		TotalSales:  total.StringFixed(2),
		Performance: text,
	}, nil
}

func (s *InsightService) complete(ctx context.Context, workflow, prompt string, maxTokens int) (string, error) {
	text, err := s.completer.Complete(ctx, prompt, maxTokens)
	if err != nil {
		s.logger.Warn("completion request failed",
			zap.String("workflow", workflow),
			zap.Error(err))
		return "", shared.ErrDependencyUnavailable
	}
	return strings.TrimSpace(text), nil
}

// splitLines breaks a completion into its non-empty trimmed lines.
func splitLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseLeadingInt extracts the first run of digits from the text.
func parseLeadingInt(text string) (int, error) {
	start := -1
	for i, r := range text {
		if unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, fmt.Errorf("no integer in completion %q", text)
	}
	end := start
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	return strconv.Atoi(text[start:end])
}
