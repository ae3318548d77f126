package dashboard_counts

import (
	"errors"
	"net/http"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const msgSessionExpired = "session expired, please log in again"

type Handler struct {
	client DashboardClient
	logger Logger
}

func NewHandler(client DashboardClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/admin/dashboard/counts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	counts, err := h.client.DashboardCounts(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("GET /admin/dashboard/counts - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("GET /admin/dashboard/counts - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/dashboard/counts - Retrieved: bookings=%d, customers=%d, tours=%d, leads=%d",
		counts.Bookings, counts.Customers, counts.Tours, counts.Leads)
	handlers.RespondSuccess(w, http.StatusOK, counts)
}
