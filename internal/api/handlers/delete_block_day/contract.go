package delete_block_day

import "context"

type BlockDaysClient interface {
	DeleteBlockDay(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
