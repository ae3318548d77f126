package create_block_day

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

type BlockDaysClient interface {
	CreateBlockDay(ctx context.Context, block domain.BlockDayRange) (*domain.BlockDayRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
