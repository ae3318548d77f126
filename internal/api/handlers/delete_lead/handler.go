package delete_lead

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const (
	msgMissingID      = "lead id is required"
	msgLeadNotFound   = "lead not found"
	msgSessionExpired = "session expired, please log in again"
)

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

// Handle DELETE /api/admin/leads/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.logger.Warn("DELETE /admin/leads/{id} - Missing lead ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if err := h.client.DeleteLead(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, starliner.ErrNotFound):
			h.logger.Warn("DELETE /admin/leads/{id} - Not found: lead_id=%s", id)
			handlers.RespondNotFound(w, msgLeadNotFound)

		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("DELETE /admin/leads/{id} - Unauthorized: lead_id=%s", id)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("DELETE /admin/leads/{id} - Failed: lead_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/leads/{id} - Deleted: lead_id=%s", id)
	handlers.RespondSuccess(w, http.StatusOK, nil)
}
