package get_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

const (
	msgMissingID        = "customer id is required"
	msgCustomerNotFound = "customer not found"
	msgSessionExpired   = "session expired, please log in again"
)

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

// Handle GET /api/admin/customers/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.logger.Warn("GET /admin/customers/{id} - Missing customer ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	customer, err := h.client.GetCustomer(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, starliner.ErrNotFound):
			h.logger.Warn("GET /admin/customers/{id} - Not found: customer_id=%s", id)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, starliner.ErrUnauthorized):
			h.logger.Warn("GET /admin/customers/{id} - Unauthorized: customer_id=%s", id)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("GET /admin/customers/{id} - Failed: customer_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/customers/{id} - Retrieved: customer_id=%s", id)
	handlers.RespondSuccess(w, http.StatusOK, customer)
}
