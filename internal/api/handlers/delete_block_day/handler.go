package delete_block_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const (
	msgMissingID      = "block period id is required"
	msgNotFound       = "block period not found"
	msgSessionExpired = "session expired, please log in again"
)

type Handler struct {
	client BlockDaysClient
	logger Logger
}

func NewHandler(client BlockDaysClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle DELETE /api/admin/block-days/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.logger.Warn("DELETE /admin/block-days/{id} - Missing block ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if err := h.client.DeleteBlockDay(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, starliner.ErrNotFound):
			h.logger.Warn("DELETE /admin/block-days/{id} - Not found: block_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("DELETE /admin/block-days/{id} - Unauthorized: block_id=%s", id)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("DELETE /admin/block-days/{id} - Failed: block_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/block-days/{id} - Deleted: block_id=%s", id)
	handlers.RespondSuccess(w, http.StatusOK, nil)
}
