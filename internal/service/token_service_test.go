package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack/homework-help-api/internal/models"
	appErrors "github.com/edustack/homework-help-api/pkg/errors"
)

func signTestToken(t *testing.T, secret string, method jwt.SigningMethod, claims models.AuthClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestTokenServiceVerify(t *testing.T) {
	service := NewTokenService(TokenConfig{Secret: "test-secret", Issuer: "edustack"})

	signed := signTestToken(t, "test-secret", jwt.SigningMethodHS256, models.AuthClaims{
		UserID: "user-1",
		Email:  "student@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "edustack",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := service.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "student@example.com", claims.Email)
}

func TestTokenServiceVerifyWrongSecret(t *testing.T) {
	service := NewTokenService(TokenConfig{Secret: "test-secret"})

	signed := signTestToken(t, "other-secret", jwt.SigningMethodHS256, models.AuthClaims{
		UserID:           "user-1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})

	_, err := service.Verify(signed)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}

func TestTokenServiceVerifyExpired(t *testing.T) {
	service := NewTokenService(TokenConfig{Secret: "test-secret"})

	signed := signTestToken(t, "test-secret", jwt.SigningMethodHS256, models.AuthClaims{
		UserID:           "user-1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
	})

	_, err := service.Verify(signed)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}

func TestTokenServiceVerifyWrongIssuer(t *testing.T) {
	service := NewTokenService(TokenConfig{Secret: "test-secret", Issuer: "edustack"})

	signed := signTestToken(t, "test-secret", jwt.SigningMethodHS256, models.AuthClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := service.Verify(signed)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}

func TestTokenServiceVerifyMissingUserID(t *testing.T) {
	service := NewTokenService(TokenConfig{Secret: "test-secret"})

	signed := signTestToken(t, "test-secret", jwt.SigningMethodHS256, models.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})

	_, err := service.Verify(signed)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}
