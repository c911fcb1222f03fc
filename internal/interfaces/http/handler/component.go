package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/hsf/backend/internal/application/catalog"
)

// ComponentHandler exposes catalog endpoints for components and categories
type ComponentHandler struct {
	BaseHandler
	service *appcatalog.ComponentService
}

// NewComponentHandler creates a new ComponentHandler
func NewComponentHandler(service *appcatalog.ComponentService) *ComponentHandler {
	return &ComponentHandler{service: service}
}

// Create handles POST /components
func (h *ComponentHandler) Create(c *gin.Context) {
	var req appcatalog.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	component, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, component)
}

// Get handles GET /components/:id
func (h *ComponentHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	component, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, component)
}

// List handles GET /components
func (h *ComponentHandler) List(c *gin.Context) {
	req, ok := bindListRequest(c, &h.BaseHandler)
	if !ok {
		return
	}

	list, err := h.service.List(c.Request.Context(), req.Offset(), req.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list.Items, list.Total, req.Page, req.PageSize)
}

// Update handles PUT /components/:id
func (h *ComponentHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req appcatalog.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	component, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, component)
}

// SetPrice handles PUT /components/:id/prices
func (h *ComponentHandler) SetPrice(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req appcatalog.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	component, err := h.service.SetPrice(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, component)
}

// Delete handles DELETE /components/:id
func (h *ComponentHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateCategory handles POST /categories
func (h *ComponentHandler) CreateCategory(c *gin.Context) {
	var req appcatalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// ListCategories handles GET /categories
func (h *ComponentHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}
