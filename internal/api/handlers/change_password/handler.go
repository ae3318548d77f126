package change_password

import (
	"errors"
	"net/http"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const (
	msgInvalidBody     = "invalid request body"
	msgMissingFields   = "email, old password and new password are required"
	msgPasswordTooWeak = "new password must be at least 8 characters"
	msgRejected        = "Password change failed"
)

const minPasswordLength = 8

type ChangePasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

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

// Handle POST /api/auth/change-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/change-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.Email == "" || req.OldPassword == "" || req.NewPassword == "" {
		h.logger.Warn("POST /auth/change-password - Missing fields")
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	if len(req.NewPassword) < minPasswordLength {
		h.logger.Warn("POST /auth/change-password - Weak password: email=%s", req.Email)
		handlers.RespondBadRequest(w, msgPasswordTooWeak)
		return
	}

	err := h.client.ChangePassword(r.Context(), starliner.ChangePasswordRequest{
		Email:       req.Email,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrUnauthorized), errors.Is(err, starliner.ErrBackendRejected):
			h.logger.Warn("POST /auth/change-password - Rejected: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgRejected)

		default:
			h.logger.Error("POST /auth/change-password - Failed: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/change-password - Password changed: email=%s", req.Email)
	handlers.RespondSuccess(w, http.StatusOK, nil)
}
