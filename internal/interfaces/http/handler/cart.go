package handler

import (
	"github.com/gin-gonic/gin"

	appsales "github.com/hsf/backend/internal/application/sales"
)

// CartHandler exposes the quoting cart endpoints
type CartHandler struct {
	BaseHandler
	service *appsales.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(service *appsales.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// AddLine handles POST /cart/lines. Adding a component already in the cart
// accumulates its quantity.
func (h *CartHandler) AddLine(c *gin.Context) {
	var req appsales.AddCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	line, err := h.service.AddLine(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, line)
}

// UpdateLine handles PUT /cart/lines/:id
func (h *CartHandler) UpdateLine(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req appsales.UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	line, err := h.service.UpdateLine(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, line)
}

// RemoveLine handles DELETE /cart/lines/:id
func (h *CartHandler) RemoveLine(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	if err := h.service.RemoveLine(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// List handles GET /cart. Requires a customer_id query parameter; carts are
// per customer.
func (h *CartHandler) List(c *gin.Context) {
	customerID, ok := parseUUIDQuery(c, &h.BaseHandler, "customer_id")
	if !ok {
		return
	}

	lines, err := h.service.List(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lines)
}

// Clear handles DELETE /cart. Empties one customer's cart.
func (h *CartHandler) Clear(c *gin.Context) {
	customerID, ok := parseUUIDQuery(c, &h.BaseHandler, "customer_id")
	if !ok {
		return
	}

	if err := h.service.Clear(c.Request.Context(), customerID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
