package list_customers

import (
	"errors"
	"net/http"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const msgSessionExpired = "session expired, please log in again"

type Handler struct {
	client CustomersClient
	logger Logger
}

func NewHandler(client CustomersClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/admin/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customers, err := h.client.ListCustomers(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("GET /admin/customers - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("GET /admin/customers - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/customers - Retrieved: count=%d", len(customers))
	handlers.RespondSuccess(w, http.StatusOK, customers)
}
