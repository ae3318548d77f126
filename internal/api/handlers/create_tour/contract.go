package create_tour

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

type ToursClient interface {
	CreateTour(ctx context.Context, tour domain.Tour) (*domain.Tour, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
