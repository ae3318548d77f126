package starliner

import (
	"encoding/json"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

// envelope единый формат ответа Starliner backend
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// LoginRequest запрос аутентификации администратора
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult результат успешного логина
type LoginResult struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

// AdminUser учетная запись администратора
type AdminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// ChangePasswordRequest запрос смены пароля администратора
type ChangePasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// CreateBookingRequest запрос создания бронирования
// RequestID - клиентский идемпотентный ключ: повторная отправка после
// потерянного ответа не создает дубликат на backend
type CreateBookingRequest struct {
	RequestID  string                 `json:"requestId"`
	TourID     string                 `json:"tourId"`
	Date       string                 `json:"date"` // YYYY-MM-DD
	Time       string                 `json:"time"` // HH:MM
	Travellers domain.TravellerCounts `json:"travellers"`
	Members    int                    `json:"totalTravelers"`
	Name       string                 `json:"name"`
	Email      string                 `json:"email"`
	Phone      string                 `json:"phone"`
	Address    string                 `json:"address"`
	Price      float64                `json:"singlePrice"`
}

// CreateBookingResult результат создания бронирования
type CreateBookingResult struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

// UpdateLeadRequest запрос обновления лида
type UpdateLeadRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// idPayload тело запросов, адресующих сущность по идентификатору
type idPayload struct {
	ID string `json:"id"`
}

// slugPayload тело запроса тура по slug
type slugPayload struct {
	Slug string `json:"slug"`
}
