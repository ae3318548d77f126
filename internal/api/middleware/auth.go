package middleware

import (
	"net/http"
	"strings"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
)

// AdminTokenCookie имя cookie с маркером аутентификации администратора
const AdminTokenCookie = "admin_token"

const msgMissingToken = "authentication required"

// Auth middleware для админской части API
// Токен принимается из cookie admin_token или заголовка Authorization.
// Сервис не проверяет токен сам - это делает Starliner backend,
// middleware лишь гарантирует его наличие
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if extractToken(r) == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func extractToken(r *http.Request) string {
	if c, err := r.Cookie(AdminTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}

	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return ""
}
