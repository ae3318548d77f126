package create_tour

import (
	"errors"
	"net/http"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const (
	msgInvalidBody    = "invalid request body"
	msgMissingFields  = "title, slug and price are required"
	msgSessionExpired = "session expired, please log in again"
	msgRejected       = "tour was rejected by the backend"
)

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

// Handle POST /api/admin/tours
// Расписание валидируется до отправки: backend исторически принимает
// что угодно, поэтому единственный рубеж - здесь
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var tour domain.Tour
	if err := handlers.DecodeJSON(r, &tour); err != nil {
		h.logger.Warn("POST /admin/tours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if tour.Title == "" || tour.Slug == "" || tour.Price <= 0 {
		h.logger.Warn("POST /admin/tours - Missing required fields: slug=%s", tour.Slug)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	if tour.Schedule != nil {
		if err := tour.Schedule.Validate(); err != nil {
			h.logger.Warn("POST /admin/tours - Invalid schedule: slug=%s, error=%v", tour.Slug, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
	}

	if tour.Status == "" {
		tour.Status = domain.TourStatusActive
	}

	created, err := h.client.CreateTour(r.Context(), tour)
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("POST /admin/tours - Unauthorized: slug=%s", tour.Slug)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, starliner.ErrBackendRejected):
			h.logger.Warn("POST /admin/tours - Rejected: slug=%s, error=%v", tour.Slug, err)
			handlers.RespondBadRequest(w, msgRejected)

		default:
			h.logger.Error("POST /admin/tours - Failed: slug=%s, error=%v", tour.Slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/tours - Tour created: tour_id=%s, slug=%s", created.ID, created.Slug)
	handlers.RespondSuccess(w, http.StatusCreated, created)
}
