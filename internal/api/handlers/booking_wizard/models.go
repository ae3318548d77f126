package booking_wizard

import (
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/wizard"
)

// StartSessionRequest тело запроса на старт сессии
type StartSessionRequest struct {
	TourSlug string `json:"tourSlug"`
}

// SelectScheduleRequest тело запроса выбора даты и времени
type SelectScheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// SetTravellersRequest тело запроса состава группы
type SetTravellersRequest struct {
	Adults      int `json:"adults"`
	Children812 int `json:"children_8_12"`
	Children37  int `json:"children_3_7"`
	Infants     int `json:"infants"`
}

// SetCustomerRequest тело запроса контактных данных
type SetCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SessionResponse состояние сессии, отдаваемое после каждой операции
type SessionResponse struct {
	SessionID      string                 `json:"sessionId"`
	Step           string                 `json:"step"`
	TourID         string                 `json:"tourId"`
	TourTitle      string                 `json:"tourTitle"`
	SelectedDate   string                 `json:"selectedDate,omitempty"`
	SelectedTime   string                 `json:"selectedTime,omitempty"`
	Travellers     domain.TravellerCounts `json:"travellers"`
	Contact        domain.ContactDetails  `json:"contact"`
	BookingRef     string                 `json:"bookingRef,omitempty"`
	LastError      string                 `json:"lastError,omitempty"`
	CanProceed     bool                   `json:"canProceed"`
	AvailableDates []string               `json:"availableDates,omitempty"`
}

// toSessionResponse собирает HTTP-модель из снимка машины.
// Список дат отдается только на шаге выбора расписания, дальше он
// клиенту не нужен
func toSessionResponse(id string, m *wizard.Machine) SessionResponse {
	snap := m.Snapshot()

	resp := SessionResponse{
		SessionID:    id,
		Step:         string(snap.Step),
		TourID:       snap.TourID,
		TourTitle:    snap.TourTitle,
		SelectedDate: snap.SelectedDate,
		SelectedTime: snap.SelectedTime,
		Travellers:   snap.Travellers,
		Contact:      snap.Contact,
		BookingRef:   snap.BookingRef,
		LastError:    snap.LastError,
		CanProceed:   snap.CanProceed,
	}

	if snap.Step == wizard.StepSchedule {
		resp.AvailableDates = m.AvailableDates()
	}

	return resp
}
