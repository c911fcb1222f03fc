package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hsf/backend/internal/domain/shared"
	"github.com/hsf/backend/internal/infrastructure/auth"
	"github.com/hsf/backend/internal/infrastructure/config"
)

type fakeBlacklist struct {
	revoked map[string]time.Duration
}

func (f *fakeBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if f.revoked == nil {
		f.revoked = make(map[string]time.Duration)
	}
	f.revoked[jti] = ttl
	return nil
}

func (f *fakeBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := f.revoked[jti]
	return ok, nil
}

func newTestAuthService(t *testing.T, password string) (*AuthService, *auth.JWTService, *fakeBlacklist) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars",
		AccessTokenExpiration: time.Hour,
		Issuer:                "test",
	})
	blacklist := &fakeBlacklist{}
	svc := NewAuthService(jwtService, blacklist, config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}, zap.NewNop())
	return svc, jwtService, blacklist
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var derr *shared.DomainError
	require.True(t, errors.As(err, &derr))
	return derr.Code
}

func TestAuthService_Login(t *testing.T) {
	svc, jwtService, _ := newTestAuthService(t, "s3cret")

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	claims, err := jwtService.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t, "s3cret")

	_, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", domainCode(t, err))
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService(t, "s3cret")

	_, err := svc.Login(context.Background(), LoginRequest{Username: "intruder", Password: "s3cret"})
	require.Error(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", domainCode(t, err))
}

func TestAuthService_LoginDisabledWithoutHash(t *testing.T) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars",
		AccessTokenExpiration: time.Hour,
		Issuer:                "test",
	})
	svc := NewAuthService(jwtService, &fakeBlacklist{}, config.AuthConfig{AdminUsername: "admin"}, zap.NewNop())

	_, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "anything"})
	require.Error(t, err)
	assert.Equal(t, "AUTH_DISABLED", domainCode(t, err))
}

func TestAuthService_Logout(t *testing.T) {
	svc, jwtService, blacklist := newTestAuthService(t, "s3cret")

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	claims, err := jwtService.Validate(resp.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))

	revoked, err := blacklist.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestAuthService_LogoutExpiredTokenIsNoop(t *testing.T) {
	svc, _, blacklist := newTestAuthService(t, "s3cret")

	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "stale-jti",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	require.NoError(t, svc.Logout(context.Background(), claims))

	revoked, err := blacklist.IsRevoked(context.Background(), "stale-jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}
