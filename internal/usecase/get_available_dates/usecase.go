package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/availability"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

// UseCase use case для получения доступных дат бронирования тура
type UseCase struct {
	tours        TourProvider
	blockDays    BlockDayProvider
	opts         availability.Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tours TourProvider,
	blockDays BlockDayProvider,
	opts availability.Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		tours:        tours,
		blockDays:    blockDays,
		opts:         opts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: slug=%s", req.Slug)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.Slug) == "" {
		uc.logger.Warn("GetAvailableDates: empty slug")
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем тур
	tour, err := uc.tours.GetTourBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, starliner.ErrNotFound) {
			uc.logger.Warn("GetAvailableDates: tour slug=%s not found", req.Slug)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get tour slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}

	// Невалидные расписания исторически существуют на backend:
	// на чтении не падаем, только шумим в логи. Создание туров
	// через этот сервис такие расписания уже не пропускает
	if tour.Schedule != nil {
		if err := tour.Schedule.Validate(); err != nil {
			uc.logger.Warn("GetAvailableDates: tour slug=%s has invalid schedule: %v", req.Slug, err)
		}
	}

	// 4. Получаем глобальные блокировки
	blocks, err := uc.blockDays.ListBlockDays(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to list block days: %v", err)
		return nil, fmt.Errorf("%w: failed to list block days: %v", ErrInternal, err)
	}

	// 5. Вычисляем множество доступных дат
	dates := availability.Resolve(tour.Schedule, blocks, now, uc.opts)

	uc.logger.Info("GetAvailableDates: resolved %d dates for slug=%s (%d global blocks)",
		dates.Len(), req.Slug, len(blocks))

	return &Response{
		TourID:    tour.ID,
		Slug:      tour.Slug,
		Dates:     dates.Sorted(),
		TimeSlots: tour.EffectiveSchedule().TimeSlots,
	}, nil
}
