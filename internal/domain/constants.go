package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingHorizonMonths is the calendar window offered to customers.
// Calendar months, not days - the day count varies with month lengths.
const BookingHorizonMonths = 6

// Traveller limits per booking
const (
	MinTravellers = 1
	MaxTravellers = 10
)

// Customer contact validation constants
const (
	MinNameLength  = 2
	MinPhoneLength = 7
)

// DefaultAdvanceBookingDays applied when a tour has no schedule configured
const DefaultAdvanceBookingDays = 60

// DefaultAvailableDays Monday through Saturday
var DefaultAvailableDays = []int{1, 2, 3, 4, 5, 6}

// DefaultTimeSlots fallback slot grid for tours without a configured schedule
var DefaultTimeSlots = []TimeSlot{
	{Time: "09:00", Capacity: 10},
	{Time: "11:00", Capacity: 10},
	{Time: "14:00", Capacity: 10},
	{Time: "16:00", Capacity: 10},
}
