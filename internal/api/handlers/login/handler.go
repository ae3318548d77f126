package login

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/middleware"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const (
	msgInvalidBody        = "invalid request body"
	msgMissingCredentials = "email and password are required"
	msgLoginFailed        = "Login failed"
)

type Handler struct {
	client AuthClient
	logger Logger
}

func NewHandler(client AuthClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle POST /api/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.Email == "" || req.Password == "" {
		h.logger.Warn("POST /auth/login - Missing credentials")
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	result, err := h.client.Login(r.Context(), starliner.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrUnauthorized), errors.Is(err, starliner.ErrBackendRejected):
			h.logger.Warn("POST /auth/login - Rejected: email=%s, error=%v", req.Email, err)
			handlers.RespondUnauthorized(w, msgLoginFailed)

		default:
			h.logger.Error("POST /auth/login - Failed: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Токен уходит и в cookie: админские страницы аутентифицируются
	// без участия клиентского JS
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminTokenCookie,
		Value:    result.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// Имя администратора читается страницами напрямую, поэтому без HttpOnly
	http.SetCookie(w, &http.Cookie{
		Name:     "admin_name",
		Value:    url.QueryEscape(result.User.Name),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /auth/login - Authenticated: email=%s", req.Email)
	handlers.RespondSuccess(w, http.StatusOK, LoginResponse{
		Token: result.Token,
		User:  result.User,
	})
}
