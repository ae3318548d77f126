package list_leads

import (
	"errors"
	"net/http"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const msgSessionExpired = "session expired, please log in again"

type Handler struct {
	client LeadsClient
	logger Logger
}

func NewHandler(client LeadsClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/admin/leads
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	leads, err := h.client.ListLeads(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("GET /admin/leads - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("GET /admin/leads - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/leads - Retrieved: count=%d", len(leads))
	handlers.RespondSuccess(w, http.StatusOK, leads)
}
