package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hsf/backend/internal/interfaces/http/dto"
)

// parseUUIDParam parses a UUID path parameter, writing a 400 response on
// failure. The boolean reports whether parsing succeeded.
func parseUUIDParam(c *gin.Context, h *BaseHandler, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDQuery parses a required UUID query parameter, writing a 400
// response when it is missing or malformed.
func parseUUIDQuery(c *gin.Context, h *BaseHandler, name string) (uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		h.BadRequest(c, name+" query parameter is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		h.BadRequest(c, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

// bindListRequest binds pagination query parameters with defaults applied
func bindListRequest(c *gin.Context, h *BaseHandler) (dto.ListRequest, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return req, false
	}
	req.Normalize()
	return req, true
}
