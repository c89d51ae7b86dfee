package services_test

import (
	"testing"
	"time"

	"pasar/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_jwt_secret"

func TestAuthService_IssueAndValidate(t *testing.T) {
	authService := services.NewAuthService(testJWTSecret)

	token, err := authService.IssueToken("customer123")
	require.NoError(t, err)

	subject, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "customer123", subject)

	_, err = authService.IssueToken("")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := services.NewAuthService(testJWTSecret)
	sign := func(method jwt.SigningMethod, key any, claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "invalid.token.string"},
		{name: "wrong secret", token: sign(jwt.SigningMethodHS256, []byte("other"), jwt.StandardClaims{
			Subject: "customer123", ExpiresAt: time.Now().Add(time.Hour).Unix(),
		})},
		{name: "expired", token: sign(jwt.SigningMethodHS256, []byte(testJWTSecret), jwt.StandardClaims{
			Subject: "customer123", ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		})},
		{name: "no subject", token: sign(jwt.SigningMethodHS256, []byte(testJWTSecret), jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		})},
		{name: "unsigned", token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.StandardClaims{
			Subject: "admin123",
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authService.ValidateToken(tt.token)
			assert.ErrorIs(t, err, services.ErrInvalidToken)
		})
	}
}
