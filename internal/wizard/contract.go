package wizard

import (
	"context"
	"time"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

// TourProvider источник данных тура
type TourProvider interface {
	GetTourBySlug(ctx context.Context, slug string) (*domain.Tour, error)
}

// BlockDayProvider источник глобальных блокировок
type BlockDayProvider interface {
	ListBlockDays(ctx context.Context) ([]domain.BlockDayRange, error)
}

// TimeProvider абстракция времени для тестирования
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
