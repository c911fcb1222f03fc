package handler

import (
	"github.com/gin-gonic/gin"

	appsales "github.com/hsf/backend/internal/application/sales"
)

// SalesInvoiceHandler exposes sales invoice endpoints
type SalesInvoiceHandler struct {
	BaseHandler
	service *appsales.InvoiceService
}

// NewSalesInvoiceHandler creates a new SalesInvoiceHandler
func NewSalesInvoiceHandler(service *appsales.InvoiceService) *SalesInvoiceHandler {
	return &SalesInvoiceHandler{service: service}
}

// Promote handles POST /sales-invoices. A quote is promoted into an
// invoice; each quote can be promoted at most once.
func (h *SalesInvoiceHandler) Promote(c *gin.Context) {
	var req appsales.PromoteQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.service.PromoteQuote(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invoice)
}

// Get handles GET /sales-invoices/:id
func (h *SalesInvoiceHandler) Get(c *gin.Context) {
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

// GetByNumber handles GET /sales-invoices/number/:no
func (h *SalesInvoiceHandler) GetByNumber(c *gin.Context) {
	invoice, err := h.service.GetByNumber(c.Request.Context(), c.Param("no"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// List handles GET /sales-invoices
func (h *SalesInvoiceHandler) List(c *gin.Context) {
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

// Void handles POST /sales-invoices/:id/void. Voiding is blocked while
// the invoice still has a non-void delivery.
func (h *SalesInvoiceHandler) Void(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	invoice, err := h.service.Void(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}
