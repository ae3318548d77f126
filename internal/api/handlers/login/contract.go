package login

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

type AuthClient interface {
	Login(ctx context.Context, req starliner.LoginRequest) (*starliner.LoginResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
