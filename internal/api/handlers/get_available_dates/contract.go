package get_available_dates

import (
	"context"

	getAvailableDates "github.com/sandboxtechnology/starliner-booking-portal/internal/usecase/get_available_dates"
)

type GetAvailableDatesUseCase interface {
	Execute(ctx context.Context, req *getAvailableDates.Request) (*getAvailableDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
