package handler

import (
	"github.com/gin-gonic/gin"

	appprocurement "github.com/hsf/backend/internal/application/procurement"
)

// InboundDeliveryHandler exposes goods receipt endpoints
type InboundDeliveryHandler struct {
	BaseHandler
	service *appprocurement.InboundDeliveryService
}

// NewInboundDeliveryHandler creates a new InboundDeliveryHandler
func NewInboundDeliveryHandler(service *appprocurement.InboundDeliveryService) *InboundDeliveryHandler {
	return &InboundDeliveryHandler{service: service}
}

// Create handles POST /inbound-deliveries
func (h *InboundDeliveryHandler) Create(c *gin.Context) {
	var req appprocurement.CreateInboundDeliveryRequest
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

// Get handles GET /inbound-deliveries/:id. Pass ?with_urls=true to presign
// attachment download URLs.
func (h *InboundDeliveryHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}
	withURLs := c.Query("with_urls") == "true"

	delivery, err := h.service.GetByID(c.Request.Context(), id, withURLs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, delivery)
}

// List handles GET /inbound-deliveries
func (h *InboundDeliveryHandler) List(c *gin.Context) {
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

// Delete handles DELETE /inbound-deliveries/:id. Reverses the receipt: the
// ledger entries go away and the invoice status is recomputed.
func (h *InboundDeliveryHandler) Delete(c *gin.Context) {
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
