package get_available_dates

import (
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
	getAvailableDates "github.com/sandboxtechnology/starliner-booking-portal/internal/usecase/get_available_dates"
)

// AvailableDatesResponse тело ответа календаря доступности
type AvailableDatesResponse struct {
	TourID    string            `json:"tourId"`
	Slug      string            `json:"slug"`
	Dates     []string          `json:"dates"`
	TimeSlots []domain.TimeSlot `json:"timeSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP-модель
func FromUseCaseResponse(resp *getAvailableDates.Response) AvailableDatesResponse {
	return AvailableDatesResponse{
		TourID:    resp.TourID,
		Slug:      resp.Slug,
		Dates:     resp.Dates,
		TimeSlots: resp.TimeSlots,
	}
}
