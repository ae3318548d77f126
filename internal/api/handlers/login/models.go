package login

import "github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  starliner.AdminUser `json:"user"`
}
