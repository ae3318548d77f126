package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	getAvailableDates "github.com/sandboxtechnology/starliner-booking-portal/internal/usecase/get_available_dates"
)

const (
	msgMissingSlug  = "tour slug is required"
	msgTourNotFound = "tour not found"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/tours/{slug}/available-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		h.logger.Warn("GET /tours/{slug}/available-dates - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{Slug: slug})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrTourNotFound):
			h.logger.Warn("GET /tours/{slug}/available-dates - Tour not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /tours/{slug}/available-dates - Invalid input: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /tours/{slug}/available-dates - Failed: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tours/{slug}/available-dates - Resolved: slug=%s, dates_count=%d",
		slug, len(result.Dates))
	handlers.RespondSuccess(w, http.StatusOK, FromUseCaseResponse(result))
}
