package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/business"
	appjwt "github.com/lokabooks/bookkeeping-backend-go/internal/pkg/jwt"
)

func protectedHandler(ja *jwtauth.JWTAuth) http.Handler {
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler = AuthRequired(ja)(handler)
	return jwtauth.Verifier(ja)(handler)
}

func TestAuthRequiredAcceptsAccessToken(t *testing.T) {
	svc := appjwt.NewJWTService("test-secret", "15m", "168h")
	token, _, err := svc.GenerateAccessToken("biz-1", nil, business.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protectedHandler(svc.JWTAuth()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequiredRejectsRefreshToken(t *testing.T) {
	svc := appjwt.NewJWTService("test-secret", "15m", "168h")
	token, _, err := svc.GenerateRefreshToken("biz-1", nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protectedHandler(svc.JWTAuth()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	svc := appjwt.NewJWTService("test-secret", "15m", "168h")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	protectedHandler(svc.JWTAuth()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsForgedSignature(t *testing.T) {
	other := appjwt.NewJWTService("other-secret", "15m", "168h")
	token, _, err := other.GenerateAccessToken("biz-1", nil, business.RoleAdmin)
	require.NoError(t, err)

	svc := appjwt.NewJWTService("test-secret", "15m", "168h")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protectedHandler(svc.JWTAuth()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
