package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const (
	msgMissingID       = "booking id is required"
	msgBookingNotFound = "booking not found"
	msgSessionExpired  = "session expired, please log in again"
)

type Handler struct {
	client BookingsClient
	logger Logger
}

func NewHandler(client BookingsClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle DELETE /api/admin/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.logger.Warn("DELETE /admin/bookings/{id} - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if err := h.client.DeleteBooking(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, starliner.ErrNotFound):
			h.logger.Warn("DELETE /admin/bookings/{id} - Not found: booking_id=%s", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("DELETE /admin/bookings/{id} - Unauthorized: booking_id=%s", id)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("DELETE /admin/bookings/{id} - Failed: booking_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/bookings/{id} - Deleted: booking_id=%s", id)
	handlers.RespondSuccess(w, http.StatusOK, nil)
}
