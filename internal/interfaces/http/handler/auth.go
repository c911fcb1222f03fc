package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/hsf/backend/internal/application/identity"
	"github.com/hsf/backend/internal/infrastructure/auth"
	"github.com/hsf/backend/internal/interfaces/http/middleware"
)

// AuthHandler exposes login and logout endpoints
type AuthHandler struct {
	BaseHandler
	service *appidentity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *appidentity.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req appidentity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Logout handles POST /auth/logout. The presented token is revoked
// until it would have expired on its own.
func (h *AuthHandler) Logout(c *gin.Context) {
	var claims *auth.Claims
	if raw, ok := c.Get(middleware.JWTClaimsKey); ok {
		claims, _ = raw.(*auth.Claims)
	}

	if err := h.service.Logout(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "logged out"})
}
