package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hsf/backend/internal/domain/shared"
	"github.com/hsf/backend/internal/infrastructure/auth"
	"github.com/hsf/backend/internal/infrastructure/config"
)

// AuthService issues and revokes API tokens. There is no user table;
// a single bootstrap credential from configuration unlocks the API.
type AuthService struct {
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	cfg        config.AuthConfig
	adminID    uuid.UUID
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(jwtService *auth.JWTService, blacklist auth.TokenBlacklist, cfg config.AuthConfig, logger *zap.Logger) *AuthService {
	return &AuthService{
		jwtService: jwtService,
		blacklist:  blacklist,
		cfg:        cfg,
		adminID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte(cfg.AdminUsername)),
		logger:     logger,
	}
}

// LoginRequest carries the login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Login verifies the bootstrap credential and issues an access token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if s.cfg.AdminPasswordHash == "" {
		return nil, shared.NewDomainError("AUTH_DISABLED", "token issuance is not configured")
	}
	if req.Username != s.cfg.AdminUsername {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("failed login attempt", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "invalid username or password")
	}

	token, expiresAt, err := s.jwtService.Generate(s.adminID, req.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout revokes the presented token until its natural expiry. A token
// that is already past expiry needs no blacklist entry.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return shared.NewDomainError("INVALID_CREDENTIALS", "no token to revoke")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.Revoke(ctx, claims.ID, ttl)
}
