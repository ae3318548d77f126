package list_block_days

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

type BlockDaysClient interface {
	ListBlockDays(ctx context.Context) ([]domain.BlockDayRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
