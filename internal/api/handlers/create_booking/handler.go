package create_booking

import (
	"errors"
	"net/http"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	createBooking "github.com/sandboxtechnology/starliner-booking-portal/internal/usecase/create_booking"
)

const (
	msgInvalidBody       = "invalid request body"
	msgTourNotFound      = "tour not found"
	msgDateNotBookable   = "selected date is not available for booking"
	msgInvalidTimeSlot   = "selected time slot is not available"
	msgInvalidTravellers = "invalid traveller counts"
	msgInvalidContact    = "invalid contact details"
	msgBackendRejected   = "booking was rejected, please try again"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(req))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTourNotFound):
			h.logger.Warn("POST /bookings - Tour not found: slug=%s", req.TourSlug)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, createBooking.ErrDateNotBookable):
			h.logger.Warn("POST /bookings - Date not bookable: slug=%s, date=%s", req.TourSlug, req.Date)
			handlers.RespondConflict(w, msgDateNotBookable)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: slug=%s, time=%s", req.TourSlug, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidTravellers):
			h.logger.Warn("POST /bookings - Invalid travellers: slug=%s, error=%v", req.TourSlug, err)
			handlers.RespondBadRequest(w, msgInvalidTravellers)

		case errors.Is(err, createBooking.ErrInvalidContact):
			h.logger.Warn("POST /bookings - Invalid contact: slug=%s, error=%v", req.TourSlug, err)
			handlers.RespondBadRequest(w, msgInvalidContact)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: slug=%s, error=%v", req.TourSlug, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrBackendRejected):
			h.logger.Warn("POST /bookings - Backend rejected: slug=%s, error=%v", req.TourSlug, err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendRejected)

		default:
			h.logger.Error("POST /bookings - Failed: slug=%s, error=%v", req.TourSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, slug=%s, date=%s",
		result.BookingID, req.TourSlug, req.Date)
	handlers.RespondSuccess(w, http.StatusCreated, FromUseCaseResponse(result))
}
