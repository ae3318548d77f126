package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/availability"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

var wizardToday = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func testTour() *domain.Tour {
	return &domain.Tour{
		ID:    "sunset-sail",
		Title: "Sunset Sail Cruise",
		Slug:  "sunset-sail-cruise",
		Price: 129,
		Schedule: &domain.TourSchedule{
			AvailableDays: []int{1, 2, 3, 4, 5, 6},
			TimeSlots: []domain.TimeSlot{
				{Time: "09:00", Capacity: 10},
				{Time: "16:00", Capacity: 10},
			},
			BlockedDates:       []string{},
			AdvanceBookingDays: 60,
		},
	}
}

func newTestMachine() *Machine {
	tour := testTour()
	dates := availability.Resolve(tour.Schedule, nil, wizardToday, availability.DefaultOptions())
	return NewMachine(tour, dates)
}

// fakeSubmitter управляемый сабмиттер для тестов
type fakeSubmitter struct {
	mu      sync.Mutex
	calls   int
	reqs    []SubmitRequest
	ref     string
	err     error
	release chan struct{} // если не nil, Submit блокируется до закрытия
}

func (f *fakeSubmitter) Submit(_ context.Context, req SubmitRequest) (string, error) {
	f.mu.Lock()
	f.calls++
	f.reqs = append(f.reqs, req)
	release := f.release
	f.mu.Unlock()

	if release != nil {
		<-release
	}
	return f.ref, f.err
}

func (f *fakeSubmitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func fillToCustomer(t *testing.T, m *Machine) {
	t.Helper()
	require.NoError(t, m.SelectSchedule("2025-01-02", "09:00"))
	require.NoError(t, m.Next())
	require.NoError(t, m.SetTravellers(domain.TravellerCounts{Adults: 2}))
	require.NoError(t, m.Next())
	require.NoError(t, m.SetCustomer(domain.ContactDetails{
		Name:    "John Doe",
		Email:   "john@example.com",
		Phone:   "+1 555 123 4567",
		Address: "10001, United States",
	}))
}

func TestMachine_HappyPath(t *testing.T) {
	m := newTestMachine()
	assert.Equal(t, StepSchedule, m.Snapshot().Step)

	fillToCustomer(t, m)
	assert.Equal(t, StepCustomer, m.Snapshot().Step)
	assert.True(t, m.Snapshot().CanProceed)

	sub := &fakeSubmitter{ref: "BK042"}
	ref, err := m.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "BK042", ref)
	assert.Equal(t, StepConfirmed, m.Snapshot().Step)
	assert.Equal(t, "BK042", m.Snapshot().BookingRef)

	require.Len(t, sub.reqs, 1)
	req := sub.reqs[0]
	assert.Equal(t, "sunset-sail", req.TourID)
	assert.Equal(t, "2025-01-02", req.Date)
	assert.Equal(t, "09:00", req.Time)
	assert.Equal(t, 2, req.Travellers.Total())
	assert.Equal(t, 129.0, req.Price)
	assert.NotEmpty(t, req.RequestID)
}

func TestMachine_ScheduleStepGating(t *testing.T) {
	m := newTestMachine()

	// Без выбранной даты и слота вперед нельзя
	assert.ErrorIs(t, m.Next(), ErrStepIncomplete)

	// Прошедшая дата не входит в множество доступных
	assert.ErrorIs(t, m.SelectSchedule("2024-12-31", "09:00"), ErrDateNotBookable)

	// Слот, которого нет в расписании тура
	assert.ErrorIs(t, m.SelectSchedule("2025-01-02", "13:37"), ErrUnknownTimeSlot)

	require.NoError(t, m.SelectSchedule("2025-01-02", "16:00"))
	assert.NoError(t, m.Next())
}

func TestMachine_TravellerGating(t *testing.T) {
	cases := []struct {
		name       string
		travellers domain.TravellerCounts
		canAdvance bool
	}{
		{"zero travellers", domain.TravellerCounts{}, false},
		{"eleven travellers", domain.TravellerCounts{Adults: 5, Children812: 3, Children37: 2, Infants: 1}, false},
		{"ten travellers", domain.TravellerCounts{Adults: 5, Children812: 2, Children37: 2, Infants: 1}, true},
		{"single adult", domain.TravellerCounts{Adults: 1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMachine()
			require.NoError(t, m.SelectSchedule("2025-01-02", "09:00"))
			require.NoError(t, m.Next())
			require.NoError(t, m.SetTravellers(tc.travellers))

			err := m.Next()
			if tc.canAdvance {
				assert.NoError(t, err)
				assert.Equal(t, StepCustomer, m.Snapshot().Step)
			} else {
				assert.ErrorIs(t, err, ErrStepIncomplete)
				assert.Equal(t, StepTravellers, m.Snapshot().Step)
			}
		})
	}
}

func TestMachine_CustomerGating(t *testing.T) {
	valid := domain.ContactDetails{
		Name:    "Jane",
		Email:   "a@b.co",
		Phone:   "1234567",
		Address: "94102, United States",
	}

	cases := []struct {
		name    string
		mutate  func(*domain.ContactDetails)
		canPass bool
	}{
		{"valid contact", func(*domain.ContactDetails) {}, true},
		{"invalid email", func(c *domain.ContactDetails) { c.Email = "not-an-email" }, false},
		{"single char name", func(c *domain.ContactDetails) { c.Name = "J" }, false},
		{"short phone", func(c *domain.ContactDetails) { c.Phone = "12345" }, false},
		{"empty address", func(c *domain.ContactDetails) { c.Address = "  " }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMachine()
			require.NoError(t, m.SelectSchedule("2025-01-02", "09:00"))
			require.NoError(t, m.Next())
			require.NoError(t, m.SetTravellers(domain.TravellerCounts{Adults: 1}))
			require.NoError(t, m.Next())

			contact := valid
			tc.mutate(&contact)
			require.NoError(t, m.SetCustomer(contact))

			_, err := m.Submit(context.Background(), &fakeSubmitter{ref: "BK1"})
			if tc.canPass {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrStepIncomplete)
			}
		})
	}
}

func TestMachine_BackTransitions(t *testing.T) {
	m := newTestMachine()

	assert.ErrorIs(t, m.Back(), ErrNoBackFromFirstStep)

	require.NoError(t, m.SelectSchedule("2025-01-02", "09:00"))
	require.NoError(t, m.Next())
	require.NoError(t, m.Back())
	assert.Equal(t, StepSchedule, m.Snapshot().Step)

	// Выбор сохраняется после возврата
	assert.Equal(t, "2025-01-02", m.Snapshot().SelectedDate)
}

func TestMachine_SettersRejectedOnWrongStep(t *testing.T) {
	m := newTestMachine()

	assert.ErrorIs(t, m.SetTravellers(domain.TravellerCounts{Adults: 1}), ErrWrongStep)
	assert.ErrorIs(t, m.SetCustomer(domain.ContactDetails{}), ErrWrongStep)

	require.NoError(t, m.SelectSchedule("2025-01-02", "09:00"))
	require.NoError(t, m.Next())
	assert.ErrorIs(t, m.SelectSchedule("2025-01-03", "09:00"), ErrWrongStep)
}

func TestMachine_DoubleSubmitGuard(t *testing.T) {
	m := newTestMachine()
	fillToCustomer(t, m)

	release := make(chan struct{})
	sub := &fakeSubmitter{ref: "BK7", release: release}

	firstDone := make(chan error, 1)
	go func() {
		_, err := m.Submit(context.Background(), sub)
		firstDone <- err
	}()

	// Дожидаемся, пока первая отправка займет машину
	require.Eventually(t, func() bool {
		return m.Snapshot().Step == StepSubmitting
	}, time.Second, 5*time.Millisecond)

	_, err := m.Submit(context.Background(), sub)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-firstDone)

	// Вторая отправка не породила второй сетевой запрос
	assert.Equal(t, 1, sub.callCount())
	assert.Equal(t, StepConfirmed, m.Snapshot().Step)
}

func TestMachine_FailureReturnsControlToCustomer(t *testing.T) {
	m := newTestMachine()
	fillToCustomer(t, m)

	firstID := ""
	failing := &fakeSubmitter{err: errors.New("backend rejected the booking")}
	_, err := m.Submit(context.Background(), failing)
	require.Error(t, err)
	require.Len(t, failing.reqs, 1)
	firstID = failing.reqs[0].RequestID

	snap := m.Snapshot()
	assert.Equal(t, StepFailed, snap.Step)
	assert.Equal(t, "backend rejected the booking", snap.LastError)

	// Назад - на шаг customer, данные формы не теряются
	require.NoError(t, m.Back())
	snap = m.Snapshot()
	assert.Equal(t, StepCustomer, snap.Step)
	assert.Equal(t, "John Doe", snap.Contact.Name)

	// Ручной ретрай использует тот же идемпотентный ключ
	retry := &fakeSubmitter{ref: "BK9"}
	ref, err := m.Submit(context.Background(), retry)
	require.NoError(t, err)
	assert.Equal(t, "BK9", ref)
	require.Len(t, retry.reqs, 1)
	assert.Equal(t, firstID, retry.reqs[0].RequestID)
}

func TestMachine_SubmitAfterConfirmReturnsSameRef(t *testing.T) {
	m := newTestMachine()
	fillToCustomer(t, m)

	sub := &fakeSubmitter{ref: "BK11"}
	_, err := m.Submit(context.Background(), sub)
	require.NoError(t, err)

	ref, err := m.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "BK11", ref)
	assert.Equal(t, 1, sub.callCount())
}
