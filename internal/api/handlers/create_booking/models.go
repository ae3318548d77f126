package create_booking

import (
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
	createBooking "github.com/sandboxtechnology/starliner-booking-portal/internal/usecase/create_booking"
)

// CreateBookingRequest тело запроса публичной формы бронирования
type CreateBookingRequest struct {
	RequestID  string                 `json:"requestId,omitempty"`
	TourSlug   string                 `json:"tourSlug"`
	Date       string                 `json:"date"`
	Time       string                 `json:"time"`
	Travellers domain.TravellerCounts `json:"travellers"`
	Name       string                 `json:"name"`
	Email      string                 `json:"email"`
	Phone      string                 `json:"phone"`
	Address    string                 `json:"address"`
}

// CreateBookingResponse тело успешного ответа
type CreateBookingResponse struct {
	BookingID  string  `json:"booking_id"`
	Status     string  `json:"status"`
	TourID     string  `json:"tourId"`
	TotalPrice float64 `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP-запрос в модель use case
func ToUseCaseRequest(req CreateBookingRequest) *createBooking.Request {
	return &createBooking.Request{
		RequestID:  req.RequestID,
		TourSlug:   req.TourSlug,
		Date:       req.Date,
		Time:       req.Time,
		Travellers: req.Travellers,
		Contact: domain.ContactDetails{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP-модель
func FromUseCaseResponse(resp *createBooking.Response) CreateBookingResponse {
	return CreateBookingResponse{
		BookingID:  resp.BookingID,
		Status:     resp.Status,
		TourID:     resp.TourID,
		TotalPrice: resp.TotalPrice,
	}
}
