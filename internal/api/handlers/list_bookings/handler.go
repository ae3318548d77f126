package list_bookings

import (
	"errors"
	"net/http"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const msgSessionExpired = "session expired, please log in again"

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

// Handle GET /api/admin/bookings
// Опциональные фильтры: ?status=confirmed, ?active=true (скрывает отмененные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.client.ListBookings(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("GET /admin/bookings - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("GET /admin/bookings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status, err := domain.ParseBookingStatus(statusStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid status filter: %q", statusStr)
			handlers.RespondBadRequest(w, "unknown booking status")
			return
		}

		filtered := make([]domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.Status == status {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	if r.URL.Query().Get("active") == "true" {
		active := make([]domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.IsActive() {
				active = append(active, b)
			}
		}
		bookings = active
	}

	h.logger.Info("GET /admin/bookings - Retrieved: count=%d", len(bookings))
	handlers.RespondSuccess(w, http.StatusOK, bookings)
}
