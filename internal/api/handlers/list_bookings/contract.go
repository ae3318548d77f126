package list_bookings

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

type BookingsClient interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
