package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
	createBooking "github.com/sandboxtechnology/starliner-booking-portal/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

func validBody() CreateBookingRequest {
	return CreateBookingRequest{
		TourSlug:   "sunset-sail-cruise",
		Date:       "2025-06-02",
		Time:       "09:00",
		Travellers: domain.TravellerCounts{Adults: 2},
		Name:       "Jane Walker",
		Email:      "jane@example.com",
		Phone:      "+1 555 0100",
		Address:    "12 Harbour Street",
	}
}

func do(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", &buf)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		BookingID:  "BK-1001",
		Status:     "pending",
		TourID:     "t1",
		TotalPrice: 129,
	}}
	h := NewHandler(uc, nopLogger{})

	rec := do(t, h, validBody())

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "sunset-sail-cruise", uc.got.TourSlug)
	assert.Equal(t, "12 Harbour Street", uc.got.Contact.Address)

	var env struct {
		Success bool                  `json:"success"`
		Data    CreateBookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "BK-1001", env.Data.BookingID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"tour not found", createBooking.ErrTourNotFound, http.StatusNotFound},
		{"date not bookable", createBooking.ErrDateNotBookable, http.StatusConflict},
		{"invalid time slot", createBooking.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"invalid travellers", createBooking.ErrInvalidTravellers, http.StatusBadRequest},
		{"invalid contact", createBooking.ErrInvalidContact, http.StatusBadRequest},
		{"backend rejected", createBooking.ErrBackendRejected, http.StatusBadGateway},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := do(t, h, validBody())

			assert.Equal(t, tt.wantStatus, rec.Code)

			var env struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings",
		bytes.NewBufferString(`{"tourSlug":"x","bogus":true}`))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
