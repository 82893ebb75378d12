package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/business"
	"github.com/lokabooks/bookkeeping-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, business.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(business.RoleAdmin) {
			response.HandleError(w, business.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
