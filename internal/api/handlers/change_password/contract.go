package change_password

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

type AuthClient interface {
	ChangePassword(ctx context.Context, req starliner.ChangePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
