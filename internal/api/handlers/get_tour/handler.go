package get_tour

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const (
	msgMissingSlug  = "tour slug is required"
	msgTourNotFound = "tour not found"
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

// Handle GET /api/tours/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		h.logger.Warn("GET /tours/{slug} - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	tour, err := h.client.GetTourBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrNotFound):
			h.logger.Warn("GET /tours/{slug} - Not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgTourNotFound)

		default:
			h.logger.Error("GET /tours/{slug} - Failed: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tours/{slug} - Retrieved: slug=%s, tour_id=%s", slug, tour.ID)
	handlers.RespondSuccess(w, http.StatusOK, tour)
}
