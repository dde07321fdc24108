package auth

import (
	"testing"
	"time"

	"palengke/config"
	"palengke/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-one-secret"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := createTestTokenService(t)
	accountID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(accountID, "buyer")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	token, err := svc.ValidateToken(accessToken, "access-secret-for-tests")
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, accountID.String(), claims["sub"])
	assert.Equal(t, "buyer", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_RefreshTokenCarriesNoRole(t *testing.T) {
	svc := createTestTokenService(t)

	_, refreshToken, err := svc.GenerateTokens(uuid.New(), "seller")
	require.NoError(t, err)

	token, err := svc.ValidateToken(refreshToken, "refresh-secret-for-tests")
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
	_, hasRole := claims["role"]
	assert.False(t, hasRole)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := createTestTokenService(t)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), "buyer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken, "a completely different secret")
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc := createTestTokenService(t)

	assert.Equal(t, time.Hour, svc.GetRefreshTokenDuration())
}
