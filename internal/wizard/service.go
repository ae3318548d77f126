package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/availability"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

// Service собирает новые сессии мастера бронирования.
// Снимок доступности делается один раз на старте сессии: пока клиент
// проходит шаги, календарь не перечитывается. Финальная проверка
// по свежим данным происходит при отправке бронирования.
type Service struct {
	tours        TourProvider
	blockDays    BlockDayProvider
	opts         availability.Options
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает фабрику сессий мастера
func NewService(
	tours TourProvider,
	blockDays BlockDayProvider,
	opts availability.Options,
	logger Logger,
) *Service {
	return &Service{
		tours:        tours,
		blockDays:    blockDays,
		opts:         opts,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// StartSession создает машину состояний для тура
func (s *Service) StartSession(ctx context.Context, slug string) (*Machine, error) {
	// 1. Получаем тур
	tour, err := s.tours.GetTourBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, starliner.ErrNotFound) {
			return nil, fmt.Errorf("%w: slug=%s", ErrTourNotFound, slug)
		}
		return nil, fmt.Errorf("get tour %s: %w", slug, err)
	}

	// 2. Получаем глобальные блокировки
	blocks, err := s.blockDays.ListBlockDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("list block days: %w", err)
	}

	// 3. Расписание с нарушенными инвариантами не должно ломать витрину
	if tour.Schedule != nil {
		if err := tour.Schedule.Validate(); err != nil {
			s.logger.Warn("StartSession - Tour has invalid schedule, using as-is: slug=%s, error=%v", slug, err)
		}
	}

	// 4. Разрешаем множество доступных дат на сегодня.
	// Отсутствие расписания передается резолверу как nil: для таких туров
	// действует его собственный fallback (все даты окна), а не дефолтное
	// недельное расписание
	available := availability.Resolve(tour.Schedule, blocks, s.timeProvider.Now(), s.opts)

	s.logger.Info("StartSession - Session prepared: slug=%s, dates_count=%d", slug, available.Len())
	return NewMachine(tour, available), nil
}
