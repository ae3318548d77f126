package create_booking

import (
	"context"
	"time"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

// StarlinerClient интерфейс клиента Starliner backend
type StarlinerClient interface {
	GetTourBySlug(ctx context.Context, slug string) (*domain.Tour, error)
	ListBlockDays(ctx context.Context) ([]domain.BlockDayRange, error)
	CreateBooking(ctx context.Context, req starliner.CreateBookingRequest) (*starliner.CreateBookingResult, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
