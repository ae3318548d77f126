package get_available_dates

import (
	"context"
	"time"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

// TourProvider интерфейс получения тура из Starliner backend
type TourProvider interface {
	GetTourBySlug(ctx context.Context, slug string) (*domain.Tour, error)
}

// BlockDayProvider интерфейс получения глобальных блокировок дат
type BlockDayProvider interface {
	ListBlockDays(ctx context.Context) ([]domain.BlockDayRange, error)
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
