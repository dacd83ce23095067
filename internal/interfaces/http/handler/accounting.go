package handler

import (
	"github.com/gin-gonic/gin"
	accountingapp "github.com/pos/backend/internal/application/accounting"
)

// AccountingHandler handles accounting entry API endpoints
type AccountingHandler struct {
	BaseHandler
	entryService *accountingapp.EntryService
}

// NewAccountingHandler creates a new AccountingHandler
func NewAccountingHandler(entryService *accountingapp.EntryService) *AccountingHandler {
	return &AccountingHandler{
		entryService: entryService,
	}
}

// Create handles POST /accounting/entries
func (h *AccountingHandler) Create(c *gin.Context) {
	var req accountingapp.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	entry, err := h.entryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, entry)
}

// Get handles GET /accounting/entries/:id
func (h *AccountingHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	entry, err := h.entryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// List handles GET /accounting/entries
func (h *AccountingHandler) List(c *gin.Context) {
	var filter accountingapp.EntryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.entryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update handles PUT /accounting/entries/:id
func (h *AccountingHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	var req accountingapp.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	entry, err := h.entryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// Summary handles GET /accounting/entries/summary
func (h *AccountingHandler) Summary(c *gin.Context) {
	summary, err := h.entryService.Summary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// Delete handles DELETE /accounting/entries/:id
func (h *AccountingHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.entryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
