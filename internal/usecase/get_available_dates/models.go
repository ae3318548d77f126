package get_available_dates

import (
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

// Request модель запроса доступных дат тура
type Request struct {
	Slug string // Публичный идентификатор тура
}

// Response модель ответа с доступными датами
type Response struct {
	TourID    string            // ID тура
	Slug      string            // Slug тура
	Dates     []string          // Отсортированные доступные даты YYYY-MM-DD
	TimeSlots []domain.TimeSlot // Слоты для выбора времени после выбора даты
}
