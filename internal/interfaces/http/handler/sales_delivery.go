package handler

import (
	"github.com/gin-gonic/gin"

	appsales "github.com/hsf/backend/internal/application/sales"
)

// SalesDeliveryHandler exposes sales delivery endpoints
type SalesDeliveryHandler struct {
	BaseHandler
	service *appsales.DeliveryService
}

// NewSalesDeliveryHandler creates a new SalesDeliveryHandler
func NewSalesDeliveryHandler(service *appsales.DeliveryService) *SalesDeliveryHandler {
	return &SalesDeliveryHandler{service: service}
}

// Create handles POST /sales-deliveries
func (h *SalesDeliveryHandler) Create(c *gin.Context) {
	var req appsales.CreateSalesDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	delivery, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, delivery)
}

// MarkDelivered handles POST /sales-deliveries/:id/deliver. Issues the
// stock and completes the parent invoice.
func (h *SalesDeliveryHandler) MarkDelivered(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req appsales.MarkDeliveredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	delivery, err := h.service.MarkDelivered(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, delivery)
}

// Void handles POST /sales-deliveries/:id/void. A delivered delivery
// returns its stock; the parent invoice reverts to pending.
func (h *SalesDeliveryHandler) Void(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	delivery, err := h.service.Void(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, delivery)
}

// Get handles GET /sales-deliveries/:id
func (h *SalesDeliveryHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	delivery, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, delivery)
}

// List handles GET /sales-deliveries
func (h *SalesDeliveryHandler) List(c *gin.Context) {
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
