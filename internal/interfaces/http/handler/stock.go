package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appinventory "github.com/hsf/backend/internal/application/inventory"
)

// StockHandler exposes stock reporting endpoints
type StockHandler struct {
	BaseHandler
	service *appinventory.MovementService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(service *appinventory.MovementService) *StockHandler {
	return &StockHandler{service: service}
}

// Movements handles GET /stock/movements. Requires a component_id query
// parameter; as_of defaults to now and is parsed as RFC 3339 or a plain
// date.
func (h *StockHandler) Movements(c *gin.Context) {
	componentID, ok := h.componentIDQuery(c)
	if !ok {
		return
	}

	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := parseAsOf(raw)
		if err != nil {
			h.BadRequest(c, "as_of must be an RFC 3339 timestamp or a YYYY-MM-DD date")
			return
		}
		asOf = parsed
	}

	report, err := h.service.Report(c.Request.Context(), componentID, asOf)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// OnHand handles GET /stock/on-hand
func (h *StockHandler) OnHand(c *gin.Context) {
	componentID, ok := h.componentIDQuery(c)
	if !ok {
		return
	}

	quantity, err := h.service.StockOnHand(c.Request.Context(), componentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{
		"component_id": componentID,
		"quantity":     quantity,
	})
}

func (h *StockHandler) componentIDQuery(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Query("component_id")
	if raw == "" {
		h.BadRequest(c, "component_id query parameter is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		h.BadRequest(c, "component_id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func parseAsOf(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
