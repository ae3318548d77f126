package update_lead

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/integrations/starliner"
)

type LeadsClient interface {
	UpdateLead(ctx context.Context, req starliner.UpdateLeadRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
