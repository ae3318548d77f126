package domain

import (
	"errors"
	"fmt"
	"time"
)

// TimeSlot represents a bookable departure time for a tour
type TimeSlot struct {
	Time     string `json:"time"`     // "09:00"
	Capacity int    `json:"capacity"` // max bookings for this slot
}

// TourSchedule describes the recurring weekly availability of a tour
// plus ad-hoc exceptions. Read-only from the resolver's perspective:
// a booking session works on the snapshot fetched at session start.
type TourSchedule struct {
	AvailableDays      []int      `json:"availableDays"` // 0=Sunday .. 6=Saturday
	TimeSlots          []TimeSlot `json:"timeSlots"`
	BlockedDates       []string   `json:"blockedDates"` // ISO dates, excluded regardless of weekday
	AdvanceBookingDays int        `json:"advanceBookingDays"`
}

// Tour publication states
const (
	TourStatusActive   = "active"
	TourStatusInactive = "inactive"
)

// Tour represents a bookable tour product
type Tour struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Slug             string        `json:"slug"`
	ShortDescription string        `json:"short_description"`
	Price            float64       `json:"price"`
	PricePrefix      string        `json:"price_prefix"`
	TourStartTime    string        `json:"tour_start_time"`
	DurationHours    int           `json:"duration_hours"`
	Image            string        `json:"image"`
	Details          string        `json:"details"`
	Status           string        `json:"status"`
	Schedule         *TourSchedule `json:"schedule,omitempty"`
}

// Schedule validation errors
var (
	ErrInvalidWeekday      = errors.New("available day must be between 0 (Sunday) and 6 (Saturday)")
	ErrDuplicateWeekday    = errors.New("available days must not contain duplicates")
	ErrInvalidBlockedDate  = errors.New("blocked date must be a valid YYYY-MM-DD date")
	ErrInvalidSlotTime     = errors.New("time slot must be a valid HH:MM time")
	ErrInvalidSlotCapacity = errors.New("time slot capacity must be positive")
	ErrInvalidAdvanceDays  = errors.New("advance booking days must not be negative")
)

// Validate enforces the structural invariants of a schedule.
// The admin surface historically accepted anything, so invalid schedules
// do exist upstream; callers decide whether a violation is fatal.
func (s *TourSchedule) Validate() error {
	seen := make(map[int]struct{}, len(s.AvailableDays))
	for _, day := range s.AvailableDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: got %d", ErrInvalidWeekday, day)
		}
		if _, ok := seen[day]; ok {
			return fmt.Errorf("%w: day %d", ErrDuplicateWeekday, day)
		}
		seen[day] = struct{}{}
	}

	for _, raw := range s.BlockedDates {
		if _, err := time.Parse(DateFormat, raw); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidBlockedDate, raw)
		}
	}

	for _, slot := range s.TimeSlots {
		if _, err := time.Parse(TimeFormat, slot.Time); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidSlotTime, slot.Time)
		}
		if slot.Capacity <= 0 {
			return fmt.Errorf("%w: slot %s has capacity %d", ErrInvalidSlotCapacity, slot.Time, slot.Capacity)
		}
	}

	if s.AdvanceBookingDays < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidAdvanceDays, s.AdvanceBookingDays)
	}

	return nil
}

// HasTimeSlot returns true if the schedule offers the given departure time
func (s *TourSchedule) HasTimeSlot(t string) bool {
	for _, slot := range s.TimeSlots {
		if slot.Time == t {
			return true
		}
	}
	return false
}

// EffectiveSchedule returns the tour's schedule, or the default schedule
// when none is configured
func (t *Tour) EffectiveSchedule() *TourSchedule {
	if t.Schedule != nil {
		return t.Schedule
	}
	return &TourSchedule{
		AvailableDays:      append([]int(nil), DefaultAvailableDays...),
		TimeSlots:          append([]TimeSlot(nil), DefaultTimeSlots...),
		BlockedDates:       []string{},
		AdvanceBookingDays: DefaultAdvanceBookingDays,
	}
}
