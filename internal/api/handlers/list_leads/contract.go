package list_leads

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

type LeadsClient interface {
	ListLeads(ctx context.Context) ([]domain.Lead, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
