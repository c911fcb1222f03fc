package handler

import (
	"github.com/gin-gonic/gin"

	appprocurement "github.com/hsf/backend/internal/application/procurement"
)

// PurchaseInvoiceHandler exposes purchase invoice endpoints
type PurchaseInvoiceHandler struct {
	BaseHandler
	service *appprocurement.PurchaseInvoiceService
}

// NewPurchaseInvoiceHandler creates a new PurchaseInvoiceHandler
func NewPurchaseInvoiceHandler(service *appprocurement.PurchaseInvoiceService) *PurchaseInvoiceHandler {
	return &PurchaseInvoiceHandler{service: service}
}

// Create handles POST /purchase-invoices
func (h *PurchaseInvoiceHandler) Create(c *gin.Context) {
	var req appprocurement.CreatePurchaseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invoice)
}

// Get handles GET /purchase-invoices/:id
func (h *PurchaseInvoiceHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	invoice, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// GetByNumber handles GET /purchase-invoices/number/:no
func (h *PurchaseInvoiceHandler) GetByNumber(c *gin.Context) {
	invoice, err := h.service.GetByNumber(c.Request.Context(), c.Param("no"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// List handles GET /purchase-invoices
func (h *PurchaseInvoiceHandler) List(c *gin.Context) {
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

// Update handles PUT /purchase-invoices/:id
func (h *PurchaseInvoiceHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req appprocurement.UpdatePurchaseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// UpdateLine handles PUT /purchase-invoices/:id/lines/:line_id
func (h *PurchaseInvoiceHandler) UpdateLine(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}
	lineID, ok := parseUUIDParam(c, &h.BaseHandler, "line_id")
	if !ok {
		return
	}

	var req appprocurement.CreatePurchaseInvoiceLineInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.service.UpdateLine(c.Request.Context(), id, lineID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// Delete handles DELETE /purchase-invoices/:id
func (h *PurchaseInvoiceHandler) Delete(c *gin.Context) {
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
