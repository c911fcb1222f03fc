package handler

import (
	"github.com/gin-gonic/gin"

	appsales "github.com/hsf/backend/internal/application/sales"
)

// SalesQuoteHandler exposes sales quote endpoints
type SalesQuoteHandler struct {
	BaseHandler
	service *appsales.QuoteService
}

// NewSalesQuoteHandler creates a new SalesQuoteHandler
func NewSalesQuoteHandler(service *appsales.QuoteService) *SalesQuoteHandler {
	return &SalesQuoteHandler{service: service}
}

// Create handles POST /sales-quotes. The quote is built from the current
// cart, priced at the quote date's weekday tier; the cart is emptied.
func (h *SalesQuoteHandler) Create(c *gin.Context) {
	var req appsales.CreateSalesQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quote, err := h.service.CreateFromCart(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, quote)
}

// Get handles GET /sales-quotes/:id
func (h *SalesQuoteHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	quote, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quote)
}

// GetByNumber handles GET /sales-quotes/number/:no
func (h *SalesQuoteHandler) GetByNumber(c *gin.Context) {
	quote, err := h.service.GetByNumber(c.Request.Context(), c.Param("no"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quote)
}

// List handles GET /sales-quotes
func (h *SalesQuoteHandler) List(c *gin.Context) {
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

// Delete handles DELETE /sales-quotes/:id
func (h *SalesQuoteHandler) Delete(c *gin.Context) {
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
