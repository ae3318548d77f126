package get_customer

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

type CustomersClient interface {
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
