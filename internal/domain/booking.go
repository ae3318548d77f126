package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusOnHold    BookingStatus = "on_hold"
)

// ParseBookingStatus converts a wire status string into a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusOnHold:
		return status, nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// TravellerCounts breaks the party down into the four billed bands
type TravellerCounts struct {
	Adults      int `json:"adults"`
	Children812 int `json:"children_8_12"`
	Children37  int `json:"children_3_7"`
	Infants     int `json:"infants"`
}

// Total returns the full party size including infants
func (t TravellerCounts) Total() int {
	return t.Adults + t.Children812 + t.Children37 + t.Infants
}

// Traveller validation errors
var (
	ErrNegativeTravellers = errors.New("traveller counts must not be negative")
	ErrPartyTooSmall      = errors.New("at least one traveller is required")
	ErrPartyTooLarge      = errors.New("party size exceeds the maximum")
)

// Validate enforces the 1..10 total party size rule
func (t TravellerCounts) Validate() error {
	if t.Adults < 0 || t.Children812 < 0 || t.Children37 < 0 || t.Infants < 0 {
		return ErrNegativeTravellers
	}
	total := t.Total()
	if total < MinTravellers {
		return ErrPartyTooSmall
	}
	if total > MaxTravellers {
		return fmt.Errorf("%w: %d > %d", ErrPartyTooLarge, total, MaxTravellers)
	}
	return nil
}

// ContactDetails carries the customer-entered contact information
type ContactDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Deliberately loose: anything shaped text@text.text is accepted,
// matching what the booking form has always allowed.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Contact validation errors
var (
	ErrNameTooShort    = errors.New("name is too short")
	ErrInvalidEmail    = errors.New("email address is invalid")
	ErrPhoneTooShort   = errors.New("phone number is too short")
	ErrAddressRequired = errors.New("address is required")
)

// Validate enforces the customer-step gating rules
func (c ContactDetails) Validate() error {
	if len(strings.TrimSpace(c.Name)) < MinNameLength {
		return ErrNameTooShort
	}
	if !emailPattern.MatchString(c.Email) {
		return ErrInvalidEmail
	}
	if len(strings.TrimSpace(c.Phone)) < MinPhoneLength {
		return ErrPhoneTooShort
	}
	if strings.TrimSpace(c.Address) == "" {
		return ErrAddressRequired
	}
	return nil
}

// Booking represents a tour booking as stored by the Starliner backend
type Booking struct {
	ID            string          `json:"id"`
	TourID        string          `json:"tourId"`
	TourTitle     string          `json:"tourTitle"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Time          string          `json:"time"` // HH:MM
	Travellers    TravellerCounts `json:"travellers"`
	TotalMembers  int             `json:"totalMembers"`
	Address       string          `json:"address"`
	Status        BookingStatus   `json:"status"`
	TotalPrice    float64         `json:"totalPrice"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}
