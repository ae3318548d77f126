package booking_wizard

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/wizard"
)

// SessionFactory собирает машину состояний для нового прохода мастера
type SessionFactory interface {
	StartSession(ctx context.Context, slug string) (*wizard.Machine, error)
}

// SessionStore хранилище активных сессий мастера бронирования
type SessionStore interface {
	Put(m *wizard.Machine) string
	Get(id string) (*wizard.Machine, error)
	Delete(id string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
