package update_lead

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const (
	msgInvalidBody    = "invalid request body"
	msgMissingID      = "lead id is required"
	msgUnknownStatus  = "unknown lead status"
	msgLeadNotFound   = "lead not found"
	msgSessionExpired = "session expired, please log in again"
)

type UpdateLeadRequest struct {
	Status string `json:"status"`
}

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

// Handle PATCH /api/admin/leads/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.logger.Warn("PATCH /admin/leads/{id} - Missing lead ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	var req UpdateLeadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/leads/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	switch domain.LeadStatus(req.Status) {
	case domain.LeadNew, domain.LeadContacted, domain.LeadConverted, domain.LeadDropped:
	default:
		h.logger.Warn("PATCH /admin/leads/{id} - Unknown status: lead_id=%s, status=%q", id, req.Status)
		handlers.RespondBadRequest(w, msgUnknownStatus)
		return
	}

	err := h.client.UpdateLead(r.Context(), starliner.UpdateLeadRequest{
		ID:     id,
		Status: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrNotFound):
			h.logger.Warn("PATCH /admin/leads/{id} - Not found: lead_id=%s", id)
			handlers.RespondNotFound(w, msgLeadNotFound)

		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("PATCH /admin/leads/{id} - Unauthorized: lead_id=%s", id)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("PATCH /admin/leads/{id} - Failed: lead_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/leads/{id} - Updated: lead_id=%s, status=%s", id, req.Status)
	handlers.RespondSuccess(w, http.StatusOK, nil)
}
