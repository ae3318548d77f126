package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/availability"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

// Step шаг мастера бронирования
type Step string

const (
	StepSchedule   Step = "schedule"
	StepTravellers Step = "travellers"
	StepCustomer   Step = "customer"
	StepSubmitting Step = "submitting"
	StepConfirmed  Step = "confirmed"
	StepFailed     Step = "failed"
)

// SubmitRequest накопленное состояние формы, уходящее одним запросом
type SubmitRequest struct {
	RequestID  string
	TourID     string
	TourSlug   string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	Travellers domain.TravellerCounts
	Contact    domain.ContactDetails
	Price      float64
}

// Submitter отправляет бронирование во внешний backend
type Submitter interface {
	Submit(ctx context.Context, req SubmitRequest) (bookingRef string, err error)
}

// Machine машина состояний мастера бронирования: schedule -> travellers ->
// customer -> submitting -> confirmed | failed. Переходы строго на один шаг
// вперед (Next) или назад (Back); каждый переход вперед охраняется
// предикатом своего шага.
//
// Расписание тура и множество доступных дат фиксируются при создании
// и не перечитываются за время жизни сессии.
type Machine struct {
	mu sync.Mutex

	tour      *domain.Tour
	available availability.DateSet

	step       Step
	inFlight   bool
	requestID  string // идемпотентный ключ, один на сессию
	bookingRef string
	lastError  string

	selectedDate string
	selectedTime string
	travellers   domain.TravellerCounts
	contact      domain.ContactDetails

	createdAt time.Time
}

// NewMachine создает мастер на первом шаге для закрепленного снимка тура
func NewMachine(tour *domain.Tour, available availability.DateSet) *Machine {
	return &Machine{
		tour:      tour,
		available: available,
		step:      StepSchedule,
		requestID: uuid.NewString(),
		createdAt: time.Now(),
	}
}

// Snapshot снимок состояния мастера для отдачи клиенту
type Snapshot struct {
	Step         Step
	TourID       string
	TourTitle    string
	SelectedDate string
	SelectedTime string
	Travellers   domain.TravellerCounts
	Contact      domain.ContactDetails
	BookingRef   string
	LastError    string
	CanProceed   bool
}

// Snapshot возвращает консистентный снимок текущего состояния
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		Step:         m.step,
		TourID:       m.tour.ID,
		TourTitle:    m.tour.Title,
		SelectedDate: m.selectedDate,
		SelectedTime: m.selectedTime,
		Travellers:   m.travellers,
		Contact:      m.contact,
		BookingRef:   m.bookingRef,
		LastError:    m.lastError,
		CanProceed:   m.stepComplete(m.step),
	}
}

// AvailableDates возвращает отсортированные даты, открытые для выбора
func (m *Machine) AvailableDates() []string {
	return m.available.Sorted()
}

// CreatedAt время создания сессии (для TTL-очистки хранилища)
func (m *Machine) CreatedAt() time.Time {
	return m.createdAt
}

// SelectSchedule выбирает дату и временной слот. Разрешено только на шаге schedule
func (m *Machine) SelectSchedule(date, timeSlot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != StepSchedule {
		return ErrWrongStep
	}

	if !m.available.ContainsISO(date) {
		return ErrDateNotBookable
	}
	if !m.tour.EffectiveSchedule().HasTimeSlot(timeSlot) {
		return ErrUnknownTimeSlot
	}

	m.selectedDate = date
	m.selectedTime = timeSlot
	return nil
}

// SetTravellers задает состав группы. Разрешено только на шаге travellers
// Значения сохраняются как есть; валидация откладывается до Next,
// чтобы форма могла жить в промежуточных состояниях
func (m *Machine) SetTravellers(t domain.TravellerCounts) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != StepTravellers {
		return ErrWrongStep
	}

	m.travellers = t
	return nil
}

// SetCustomer задает контактные данные. Разрешено только на шаге customer
func (m *Machine) SetCustomer(c domain.ContactDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != StepCustomer {
		return ErrWrongStep
	}

	m.contact = c
	return nil
}

// Next переходит на следующий шаг, если предикат текущего выполнен
// С шага customer вперед ведет только Submit
func (m *Machine) Next() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.stepComplete(m.step) {
		return ErrStepIncomplete
	}

	switch m.step {
	case StepSchedule:
		m.step = StepTravellers
	case StepTravellers:
		m.step = StepCustomer
	case StepCustomer:
		// Отправка - отдельная операция с собственной защитой
		return ErrWrongStep
	default:
		return ErrSessionFinished
	}

	return nil
}

// Back возвращается на один шаг назад. На первом шаге недоступно,
// во время отправки и после завершения - тоже
func (m *Machine) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.step {
	case StepSchedule:
		return ErrNoBackFromFirstStep
	case StepTravellers:
		m.step = StepSchedule
	case StepCustomer:
		m.step = StepTravellers
	case StepFailed:
		// После неудачной отправки управление возвращается на шаг customer
		m.step = StepCustomer
	default:
		return ErrSessionFinished
	}

	return nil
}

// Submit отправляет накопленное состояние одним запросом.
// Повторный вызов во время отправки отклоняется - одновременно допускается
// ровно одна отправка. Идемпотентный ключ requestID не меняется между
// повторными попытками, поэтому ретрай после потерянного ответа не
// создает дубликат на backend.
func (m *Machine) Submit(ctx context.Context, submitter Submitter) (string, error) {
	m.mu.Lock()

	if m.inFlight {
		m.mu.Unlock()
		return "", ErrSubmissionInFlight
	}
	if m.step == StepConfirmed {
		ref := m.bookingRef
		m.mu.Unlock()
		return ref, nil
	}
	if m.step != StepCustomer && m.step != StepFailed {
		m.mu.Unlock()
		return "", ErrWrongStep
	}
	if !m.contactValid() || !m.travellersValid() || !m.scheduleValid() {
		m.mu.Unlock()
		return "", ErrStepIncomplete
	}

	req := SubmitRequest{
		RequestID:  m.requestID,
		TourID:     m.tour.ID,
		TourSlug:   m.tour.Slug,
		Date:       m.selectedDate,
		Time:       m.selectedTime,
		Travellers: m.travellers,
		Contact:    m.contact,
		Price:      m.tour.Price,
	}

	m.inFlight = true
	m.step = StepSubmitting
	m.lastError = ""
	m.mu.Unlock()

	// Сетевой вызов без удержания мьютекса
	ref, err := submitter.Submit(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false

	if err != nil {
		// Без автоматического ретрая: ошибка показывается inline,
		// Back возвращает управление на шаг customer
		m.step = StepFailed
		m.lastError = err.Error()
		return "", err
	}

	m.step = StepConfirmed
	m.bookingRef = ref
	return ref, nil
}

// stepComplete предикат готовности шага. Вызывается под мьютексом
func (m *Machine) stepComplete(step Step) bool {
	switch step {
	case StepSchedule:
		return m.scheduleValid()
	case StepTravellers:
		return m.travellersValid()
	case StepCustomer:
		return m.contactValid()
	default:
		return false
	}
}

func (m *Machine) scheduleValid() bool {
	return m.selectedDate != "" && m.selectedTime != ""
}

func (m *Machine) travellersValid() bool {
	return m.travellers.Validate() == nil
}

func (m *Machine) contactValid() bool {
	return m.contact.Validate() == nil
}
