package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	salesapp "github.com/pos/backend/internal/application/sales"
)

// TableHandler handles dining-table API endpoints
type TableHandler struct {
	BaseHandler
	tableService *salesapp.TableService
}

// NewTableHandler creates a new TableHandler
func NewTableHandler(tableService *salesapp.TableService) *TableHandler {
	return &TableHandler{
		tableService: tableService,
	}
}

// Create handles POST /sales/tables
func (h *TableHandler) Create(c *gin.Context) {
	var req salesapp.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	table, err := h.tableService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, table)
}

// Get handles GET /sales/tables/:id
func (h *TableHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	table, err := h.tableService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, table)
}

// List handles GET /sales/tables
func (h *TableHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.tableService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update handles PUT /sales/tables/:id
func (h *TableHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	var req salesapp.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	table, err := h.tableService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, table)
}

// Delete handles DELETE /sales/tables/:id
func (h *TableHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid table ID")
		return
	}

	if err := h.tableService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
