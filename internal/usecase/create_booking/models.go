package create_booking

import (
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	RequestID  string                 // Идемпотентный ключ; пустой - будет сгенерирован
	TourSlug   string                 // Публичный идентификатор тура
	Date       string                 // Дата бронирования YYYY-MM-DD
	Time       string                 // Временной слот HH:MM
	Travellers domain.TravellerCounts // Состав группы
	Contact    domain.ContactDetails  // Контактные данные клиента
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID  string  // Идентификатор бронирования на backend
	Status     string  // Статус, присвоенный backend
	TourID     string  // ID тура
	TotalPrice float64 // Итоговая стоимость
}
