package list_block_days

import (
	"errors"
	"net/http"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const msgSessionExpired = "session expired, please log in again"

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

// Handle GET /api/admin/block-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.client.ListBlockDays(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("GET /admin/block-days - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("GET /admin/block-days - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/block-days - Retrieved: count=%d", len(blocks))
	handlers.RespondSuccess(w, http.StatusOK, blocks)
}
