package booking_wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/availability"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/wizard"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeFactory отдает заранее собранную машину
type fakeFactory struct {
	machine *wizard.Machine
	err     error
}

func (f *fakeFactory) StartSession(context.Context, string) (*wizard.Machine, error) {
	return f.machine, f.err
}

// fakeSubmitter управляемый backend для отправки
type fakeSubmitter struct {
	ref string
	err error
}

func (f *fakeSubmitter) Submit(context.Context, wizard.SubmitRequest) (string, error) {
	return f.ref, f.err
}

func testMachine() *wizard.Machine {
	tour := &domain.Tour{
		ID:    "t1",
		Title: "Sunset Sail Cruise",
		Slug:  "sunset-sail-cruise",
		Price: 129,
		Schedule: &domain.TourSchedule{
			AvailableDays: []int{1, 2, 3, 4, 5, 6},
			TimeSlots:     []domain.TimeSlot{{Time: "09:00", Capacity: 10}},
		},
	}

	dates := availability.NewDateSet()
	dates.Add(time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC))
	dates.Add(time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC))

	return wizard.NewMachine(tour, dates)
}

func newTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/wizard/sessions", h.HandleStart).Methods(http.MethodPost)
	r.HandleFunc("/api/wizard/sessions/{id}", h.HandleGet).Methods(http.MethodGet)
	r.HandleFunc("/api/wizard/sessions/{id}/schedule", h.HandleSelectSchedule).Methods(http.MethodPost)
	r.HandleFunc("/api/wizard/sessions/{id}/travellers", h.HandleSetTravellers).Methods(http.MethodPost)
	r.HandleFunc("/api/wizard/sessions/{id}/customer", h.HandleSetCustomer).Methods(http.MethodPost)
	r.HandleFunc("/api/wizard/sessions/{id}/next", h.HandleNext).Methods(http.MethodPost)
	r.HandleFunc("/api/wizard/sessions/{id}/back", h.HandleBack).Methods(http.MethodPost)
	r.HandleFunc("/api/wizard/sessions/{id}/submit", h.HandleSubmit).Methods(http.MethodPost)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func doJSON(t *testing.T, r *mux.Router, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func sessionFrom(t *testing.T, env envelope) SessionResponse {
	t.Helper()
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	return resp
}

func TestWizard_FullFlow(t *testing.T) {
	store := wizard.NewStore(time.Hour)
	h := NewHandler(
		&fakeFactory{machine: testMachine()},
		store,
		&fakeSubmitter{ref: "BK-1001"},
		nopLogger{},
	)
	r := newTestRouter(h)

	// Старт сессии
	rec, env := doJSON(t, r, http.MethodPost, "/api/wizard/sessions", StartSessionRequest{TourSlug: "sunset-sail-cruise"})
	require.Equal(t, http.StatusCreated, rec.Code)
	sess := sessionFrom(t, env)
	require.NotEmpty(t, sess.SessionID)
	assert.Equal(t, "schedule", sess.Step)
	assert.Equal(t, []string{"2025-06-02", "2025-06-03"}, sess.AvailableDates)
	assert.False(t, sess.CanProceed)

	base := "/api/wizard/sessions/" + sess.SessionID

	// Шаг 1: дата и время
	rec, env = doJSON(t, r, http.MethodPost, base+"/schedule", SelectScheduleRequest{Date: "2025-06-02", Time: "09:00"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sessionFrom(t, env).CanProceed)

	rec, _ = doJSON(t, r, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Шаг 2: состав группы
	rec, _ = doJSON(t, r, http.MethodPost, base+"/travellers", SetTravellersRequest{Adults: 2, Infants: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doJSON(t, r, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Шаг 3: контактные данные
	rec, _ = doJSON(t, r, http.MethodPost, base+"/customer", SetCustomerRequest{
		Name:    "Jane Walker",
		Email:   "jane@example.com",
		Phone:   "+1 555 0100",
		Address: "12 Harbour Street",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Отправка
	rec, env = doJSON(t, r, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sess = sessionFrom(t, env)
	assert.Equal(t, "confirmed", sess.Step)
	assert.Equal(t, "BK-1001", sess.BookingRef)
}

func TestWizard_StartUnknownTour(t *testing.T) {
	h := NewHandler(
		&fakeFactory{err: fmt.Errorf("%w: slug=nope", wizard.ErrTourNotFound)},
		wizard.NewStore(time.Hour),
		&fakeSubmitter{},
		nopLogger{},
	)
	r := newTestRouter(h)

	rec, env := doJSON(t, r, http.MethodPost, "/api/wizard/sessions", StartSessionRequest{TourSlug: "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, msgTourNotFound, env.Message)
}

func TestWizard_UnknownSession(t *testing.T) {
	h := NewHandler(&fakeFactory{}, wizard.NewStore(time.Hour), &fakeSubmitter{}, nopLogger{})
	r := newTestRouter(h)

	rec, env := doJSON(t, r, http.MethodGet, "/api/wizard/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgSessionNotFound, env.Message)
}

func TestWizard_ScheduleRejectsBlockedDate(t *testing.T) {
	store := wizard.NewStore(time.Hour)
	h := NewHandler(&fakeFactory{machine: testMachine()}, store, &fakeSubmitter{}, nopLogger{})
	r := newTestRouter(h)

	_, env := doJSON(t, r, http.MethodPost, "/api/wizard/sessions", StartSessionRequest{TourSlug: "sunset-sail-cruise"})
	sess := sessionFrom(t, env)

	rec, env := doJSON(t, r, http.MethodPost, "/api/wizard/sessions/"+sess.SessionID+"/schedule",
		SelectScheduleRequest{Date: "2025-06-08", Time: "09:00"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgDateNotBookable, env.Message)
}

func TestWizard_NextBlockedUntilStepComplete(t *testing.T) {
	store := wizard.NewStore(time.Hour)
	h := NewHandler(&fakeFactory{machine: testMachine()}, store, &fakeSubmitter{}, nopLogger{})
	r := newTestRouter(h)

	_, env := doJSON(t, r, http.MethodPost, "/api/wizard/sessions", StartSessionRequest{TourSlug: "sunset-sail-cruise"})
	sess := sessionFrom(t, env)

	rec, env := doJSON(t, r, http.MethodPost, "/api/wizard/sessions/"+sess.SessionID+"/next", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, msgStepIncomplete, env.Message)
}

func TestWizard_FailedSubmissionKeepsSessionAlive(t *testing.T) {
	store := wizard.NewStore(time.Hour)
	h := NewHandler(
		&fakeFactory{machine: testMachine()},
		store,
		&fakeSubmitter{err: errors.New("backend rejected the booking")},
		nopLogger{},
	)
	r := newTestRouter(h)

	_, env := doJSON(t, r, http.MethodPost, "/api/wizard/sessions", StartSessionRequest{TourSlug: "sunset-sail-cruise"})
	sess := sessionFrom(t, env)
	base := "/api/wizard/sessions/" + sess.SessionID

	doJSON(t, r, http.MethodPost, base+"/schedule", SelectScheduleRequest{Date: "2025-06-02", Time: "09:00"})
	doJSON(t, r, http.MethodPost, base+"/next", nil)
	doJSON(t, r, http.MethodPost, base+"/travellers", SetTravellersRequest{Adults: 2})
	doJSON(t, r, http.MethodPost, base+"/next", nil)
	doJSON(t, r, http.MethodPost, base+"/customer", SetCustomerRequest{
		Name: "Jane Walker", Email: "jane@example.com", Phone: "+1 555 0100", Address: "12 Harbour Street",
	})

	// Отказ backend - не ошибка HTTP-уровня
	rec, env := doJSON(t, r, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	failed := sessionFrom(t, env)
	assert.Equal(t, "failed", failed.Step)
	assert.Equal(t, "backend rejected the booking", failed.LastError)

	// Назад возвращает на шаг customer для правки данных
	rec, env = doJSON(t, r, http.MethodPost, base+"/back", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "customer", sessionFrom(t, env).Step)
}
