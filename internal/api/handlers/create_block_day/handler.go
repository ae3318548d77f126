package create_block_day

import (
	"errors"
	"net/http"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const (
	msgInvalidBody    = "invalid request body"
	msgSessionExpired = "session expired, please log in again"
	msgRejected       = "block period was rejected by the backend"
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

// Handle POST /api/admin/block-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var block domain.BlockDayRange
	if err := handlers.DecodeJSON(r, &block); err != nil {
		h.logger.Warn("POST /admin/block-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := block.Validate(); err != nil {
		h.logger.Warn("POST /admin/block-days - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	created, err := h.client.CreateBlockDay(r.Context(), block)
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("POST /admin/block-days - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, starliner.ErrBackendRejected):
			h.logger.Warn("POST /admin/block-days - Rejected: %v", err)
			handlers.RespondBadRequest(w, msgRejected)

		default:
			h.logger.Error("POST /admin/block-days - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/block-days - Created: block_id=%s, range=%s..%s",
		created.ID, created.StartDate, created.EndDate)
	handlers.RespondSuccess(w, http.StatusCreated, created)
}
