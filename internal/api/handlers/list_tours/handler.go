package list_tours

import (
	"errors"
	"net/http"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const msgSessionExpired = "session expired, please log in again"

type Handler struct {
	client ToursClient
	logger Logger
}

func NewHandler(client ToursClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/tours
// По умолчанию скрытые туры не отдаются: ?all=true возвращает все
// (используется админской частью)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tours, err := h.client.ListTours(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("GET /tours - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("GET /tours - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if r.URL.Query().Get("all") != "true" {
		visible := make([]domain.Tour, 0, len(tours))
		for _, t := range tours {
			if t.Status != domain.TourStatusInactive {
				visible = append(visible, t)
			}
		}
		tours = visible
	}

	h.logger.Info("GET /tours - Retrieved: count=%d", len(tours))
	handlers.RespondSuccess(w, http.StatusOK, tours)
}
