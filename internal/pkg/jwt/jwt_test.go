package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/business"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m", "168h")
	employeeID := "3e9f8c2a-5b1d-4e6f-9a7c-1d2e3f4a5b6c"

	tokenString, expiresAt, err := svc.GenerateAccessToken("biz-1", &employeeID, business.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "biz-1", claims["business_id"])
	assert.Equal(t, employeeID, claims["employee_id"])
	assert.Equal(t, string(business.RoleAdmin), claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessTokenNilEmployee(t *testing.T) {
	svc := NewJWTService("test-secret", "15m", "168h")

	tokenString, _, err := svc.GenerateAccessToken("biz-1", nil, business.RoleAdmin)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["employee_id"])
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m", "168h")
	employeeID := "3e9f8c2a-5b1d-4e6f-9a7c-1d2e3f4a5b6c"

	tokenString, _, err := svc.GenerateRefreshToken("biz-1", &employeeID)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
	assert.NotContains(t, claims, "role")
}

func TestGenerateAccessTokenBadExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "not-a-duration", "168h")

	_, _, err := svc.GenerateAccessToken("biz-1", nil, business.RoleStaff)
	assert.Error(t, err)
}
