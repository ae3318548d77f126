package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/availability"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

// UseCase use case для создания бронирования
// Единая точка валидации: через неё проходят и отправка из мастера,
// и прямой вызов POST /api/bookings
type UseCase struct {
	client       StarlinerClient
	opts         availability.Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client StarlinerClient, opts availability.Options, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		opts:         opts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slug=%s, date=%s, time=%s, travellers=%d",
		req.TourSlug, req.Date, req.Time, req.Travellers.Total())

	// 1. Валидация структуры запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем тур
	tour, err := uc.client.GetTourBySlug(ctx, req.TourSlug)
	if err != nil {
		if errors.Is(err, starliner.ErrNotFound) {
			uc.logger.Warn("CreateBooking: tour slug=%s not found", req.TourSlug)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("CreateBooking: failed to get tour slug=%s: %v", req.TourSlug, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}

	// 4. Получаем глобальные блокировки
	blocks, err := uc.client.ListBlockDays(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list block days: %v", err)
		return nil, fmt.Errorf("%w: failed to list block days: %v", ErrInternal, err)
	}

	// 5. Проверяем, что дата открыта для бронирования
	// Валидируем по свежим данным, а не по снимку сессии: блокировка,
	// добавленная администратором после старта мастера, уже действует
	dates := availability.Resolve(tour.Schedule, blocks, now, uc.opts)
	if !dates.ContainsISO(req.Date) {
		uc.logger.Warn("CreateBooking: date %s is not bookable for slug=%s", req.Date, req.TourSlug)
		return nil, ErrDateNotBookable
	}

	// 6. Проверяем временной слот
	if !tour.EffectiveSchedule().HasTimeSlot(req.Time) {
		uc.logger.Warn("CreateBooking: time slot %s is not offered by slug=%s", req.Time, req.TourSlug)
		return nil, ErrInvalidTimeSlot
	}

	// 7. Валидация состава группы
	if err := req.Travellers.Validate(); err != nil {
		uc.logger.Warn("CreateBooking: traveller validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTravellers, err)
	}

	// 8. Валидация контактных данных
	if err := req.Contact.Validate(); err != nil {
		uc.logger.Warn("CreateBooking: contact validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidContact, err)
	}

	// 9. Идемпотентный ключ: уважаем ключ сессии мастера,
	// для прямых вызовов генерируем свой
	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	// 10. Отправляем бронирование на backend
	result, err := uc.client.CreateBooking(ctx, starliner.CreateBookingRequest{
		RequestID:  requestID,
		TourID:     tour.ID,
		Date:       req.Date,
		Time:       req.Time,
		Travellers: req.Travellers,
		Members:    req.Travellers.Total(),
		Name:       req.Contact.Name,
		Email:      req.Contact.Email,
		Phone:      req.Contact.Phone,
		Address:    req.Contact.Address,
		Price:      tour.Price,
	})
	if err != nil {
		if errors.Is(err, starliner.ErrBackendRejected) {
			uc.logger.Warn("CreateBooking: backend rejected booking for slug=%s: %v", req.TourSlug, err)
			return nil, fmt.Errorf("%w: %v", ErrBackendRejected, err)
		}
		uc.logger.Error("CreateBooking: failed to create booking for slug=%s: %v", req.TourSlug, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for slug=%s (request_id=%s)",
		result.BookingID, req.TourSlug, requestID)

	return &Response{
		BookingID:  result.BookingID,
		Status:     result.Status,
		TourID:     tour.ID,
		TotalPrice: tour.Price,
	}, nil
}
