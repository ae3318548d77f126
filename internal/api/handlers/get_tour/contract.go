package get_tour

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

type ToursClient interface {
	GetTourBySlug(ctx context.Context, slug string) (*domain.Tour, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
