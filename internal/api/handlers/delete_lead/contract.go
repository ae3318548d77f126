package delete_lead

import "context"

type LeadsClient interface {
	DeleteLead(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
