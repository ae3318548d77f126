package list_customers

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

type CustomersClient interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
