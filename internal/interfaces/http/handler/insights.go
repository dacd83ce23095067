package handler

import (
	"github.com/gin-gonic/gin"
	insightsapp "github.com/pos/backend/internal/application/insights"
)

// InsightsHandler handles generative insight API endpoints
type InsightsHandler struct {
	BaseHandler
	insightService *insightsapp.InsightService
}

// NewInsightsHandler creates a new InsightsHandler
func NewInsightsHandler(insightService *insightsapp.InsightService) *InsightsHandler {
	return &InsightsHandler{
		insightService: insightService,
	}
}

// SalesTrends handles GET /insights/sales-trends
func (h *InsightsHandler) SalesTrends(c *gin.Context) {
	insight, err := h.insightService.SalesTrends(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, insight)
}

// CustomerRecommendations handles GET /insights/customers/:id/recommendations
func (h *InsightsHandler) CustomerRecommendations(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	recommendations, err := h.insightService.CustomerRecommendations(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, recommendations)
}

// OptimizeInventory handles GET /insights/products/:id/optimize
func (h *InsightsHandler) OptimizeInventory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	result, err := h.insightService.OptimizeInventory(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// EmployeePerformance handles GET /insights/employees/:id/performance
func (h *InsightsHandler) EmployeePerformance(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	review, err := h.insightService.EmployeePerformance(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, review)
}
