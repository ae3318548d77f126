package dashboard_counts

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

type DashboardClient interface {
	DashboardCounts(ctx context.Context) (*domain.DashboardCounts, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
