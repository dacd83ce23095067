package handler

import (
	"github.com/gin-gonic/gin"
	settingsapp "github.com/pos/backend/internal/application/settings"
)

// SettingsHandler handles UI settings, template and property settings endpoints
type SettingsHandler struct {
	BaseHandler
	uiService       *settingsapp.UISettingsService
	templateService *settingsapp.TemplateService
	propertyService *settingsapp.PropertySettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(
	uiService *settingsapp.UISettingsService,
	templateService *settingsapp.TemplateService,
	propertyService *settingsapp.PropertySettingsService,
) *SettingsHandler {
	return &SettingsHandler{
		uiService:       uiService,
		templateService: templateService,
		propertyService: propertyService,
	}
}

// CreateUISettings handles POST /settings/ui
func (h *SettingsHandler) CreateUISettings(c *gin.Context) {
	var req settingsapp.CreateUISettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	record, err := h.uiService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, record)
}

// GetUISettings handles GET /settings/ui/:id
func (h *SettingsHandler) GetUISettings(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid settings ID")
		return
	}

	record, err := h.uiService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// ListUISettings handles GET /settings/ui
func (h *SettingsHandler) ListUISettings(c *gin.Context) {
	var filter settingsapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	records, err := h.uiService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, records)
}

// UpdateUISettings handles PUT /settings/ui/:id
func (h *SettingsHandler) UpdateUISettings(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid settings ID")
		return
	}

	var req settingsapp.UpdateUISettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	record, err := h.uiService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// DeleteUISettings handles DELETE /settings/ui/:id
func (h *SettingsHandler) DeleteUISettings(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid settings ID")
		return
	}

	if err := h.uiService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateTemplate handles POST /settings/templates
func (h *SettingsHandler) CreateTemplate(c *gin.Context) {
	var req settingsapp.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	record, err := h.templateService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, record)
}

// GetTemplate handles GET /settings/templates/:id
func (h *SettingsHandler) GetTemplate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	record, err := h.templateService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// ListTemplates handles GET /settings/templates
func (h *SettingsHandler) ListTemplates(c *gin.Context) {
	var filter settingsapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	records, err := h.templateService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, records)
}

// UpdateTemplate handles PUT /settings/templates/:id
func (h *SettingsHandler) UpdateTemplate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	var req settingsapp.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	record, err := h.templateService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// DeleteTemplate handles DELETE /settings/templates/:id
func (h *SettingsHandler) DeleteTemplate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreatePropertySettings handles POST /settings/property
func (h *SettingsHandler) CreatePropertySettings(c *gin.Context) {
	var req settingsapp.CreatePropertySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	record, err := h.propertyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, record)
}

// GetPropertySettings handles GET /settings/property/:id
func (h *SettingsHandler) GetPropertySettings(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid settings ID")
		return
	}

	record, err := h.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// ListPropertySettings handles GET /settings/property
func (h *SettingsHandler) ListPropertySettings(c *gin.Context) {
	var filter settingsapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	records, err := h.propertyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, records)
}

// UpdatePropertySettings handles PUT /settings/property/:id
func (h *SettingsHandler) UpdatePropertySettings(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid settings ID")
		return
	}

	var req settingsapp.UpdatePropertySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	record, err := h.propertyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// DeletePropertySettings handles DELETE /settings/property/:id
func (h *SettingsHandler) DeletePropertySettings(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid settings ID")
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
