package domain

import (
	"errors"
	"fmt"
	"time"
)

// BlockDayRange is a named global blackout period managed by admins.
// It applies to every tour regardless of the tour's own schedule.
// Start and end dates are inclusive, calendar-local, date-only.
type BlockDayRange struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

// Block day validation errors
var (
	ErrBlockTitleRequired = errors.New("block day title is required")
	ErrInvalidBlockDate   = errors.New("block day dates must be valid YYYY-MM-DD dates")
	ErrInvertedBlockRange = errors.New("block day start date must not be after end date")
)

// Validate enforces the range invariants
func (b *BlockDayRange) Validate() error {
	if b.Title == "" {
		return ErrBlockTitleRequired
	}

	start, err := time.Parse(DateFormat, b.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start_date %q", ErrInvalidBlockDate, b.StartDate)
	}
	end, err := time.Parse(DateFormat, b.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end_date %q", ErrInvalidBlockDate, b.EndDate)
	}

	if start.After(end) {
		return fmt.Errorf("%w: %s > %s", ErrInvertedBlockRange, b.StartDate, b.EndDate)
	}

	return nil
}

// Contains reports whether the given date falls inside the range.
// Comparison is date-only; the time component of d is ignored.
// Malformed ranges never match.
func (b *BlockDayRange) Contains(d time.Time) bool {
	start, err := time.Parse(DateFormat, b.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(DateFormat, b.EndDate)
	if err != nil {
		return false
	}

	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}
