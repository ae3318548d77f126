package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

// validateRequest валидирует структуру входных данных
// Бизнес-правила (доступность даты, состав группы) проверяются дальше по шагам
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TourSlug) == "" {
		return fmt.Errorf("%w: tour slug is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.TimeFormat, req.Time); err != nil {
		return fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}

	return nil
}
