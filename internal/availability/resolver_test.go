package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

// 2025-01-01 is a Wednesday
var testToday = time.Date(2025, time.January, 1, 15, 42, 7, 0, time.UTC)

func monSatSchedule() *domain.TourSchedule {
	return &domain.TourSchedule{
		AvailableDays: []int{1, 2, 3, 4, 5, 6},
		TimeSlots: []domain.TimeSlot{
			{Time: "09:00", Capacity: 10},
			{Time: "14:00", Capacity: 10},
		},
		BlockedDates:       []string{},
		AdvanceBookingDays: 60,
	}
}

func TestResolve_NoSchedule_EveryDateInWindow(t *testing.T) {
	dates := Resolve(nil, nil, testToday, DefaultOptions())

	// Окно [2025-01-01, 2025-07-01] включительно: 182 дня
	assert.Equal(t, 182, dates.Len())

	assert.True(t, dates.ContainsISO("2025-01-01"), "window start is inclusive")
	assert.True(t, dates.ContainsISO("2025-07-01"), "window end is inclusive")
	assert.True(t, dates.ContainsISO("2025-01-05"), "Sundays are included")
	assert.False(t, dates.ContainsISO("2024-12-31"), "past dates are excluded")
	assert.False(t, dates.ContainsISO("2025-07-02"), "dates past the horizon are excluded")
}

func TestResolve_TimeOfDayDoesNotMatter(t *testing.T) {
	morning := time.Date(2025, time.January, 1, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, time.January, 1, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, Resolve(nil, nil, morning, DefaultOptions()), Resolve(nil, nil, night, DefaultOptions()))
}

func TestResolve_MonSatSchedule_NoDayOfWeekExcluded(t *testing.T) {
	dates := Resolve(monSatSchedule(), nil, testToday, DefaultOptions())

	// Пн-Сб в расписании, воскресенье форсируется => доступны все дни недели
	for offset := 0; offset < 7; offset++ {
		d := testToday.AddDate(0, 0, offset)
		assert.True(t, dates.Contains(d), "expected %s to be bookable", d.Format(domain.DateFormat))
	}
	assert.Equal(t, 182, dates.Len())
}

func TestResolve_EmptyAvailableDays_OnlySundays(t *testing.T) {
	schedule := monSatSchedule()
	schedule.AvailableDays = []int{}

	dates := Resolve(schedule, nil, testToday, DefaultOptions())

	require.NotZero(t, dates.Len())
	for _, iso := range dates.Sorted() {
		d, err := time.Parse(domain.DateFormat, iso)
		require.NoError(t, err)
		assert.Equal(t, time.Sunday, d.Weekday(), "%s should be a Sunday", iso)
	}
}

func TestResolve_SundayOverrideDisabled(t *testing.T) {
	schedule := monSatSchedule() // Sunday deliberately absent
	opts := Options{SundayAlwaysBookable: false}

	dates := Resolve(schedule, nil, testToday, opts)

	assert.False(t, dates.ContainsISO("2025-01-05"))
	assert.True(t, dates.ContainsISO("2025-01-06"), "Monday stays bookable")

	// С пустым расписанием и выключенным override не доступно ничего
	schedule.AvailableDays = []int{}
	assert.Zero(t, Resolve(schedule, nil, testToday, opts).Len())
}

func TestResolve_GlobalBlocksApplyRegardlessOfSchedule(t *testing.T) {
	blocks := []domain.BlockDayRange{
		{Title: "Maintenance", StartDate: "2025-02-10", EndDate: "2025-02-12"},
	}

	cases := []struct {
		name     string
		schedule *domain.TourSchedule
	}{
		{"no schedule", nil},
		{"mon-sat schedule", monSatSchedule()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dates := Resolve(tc.schedule, blocks, testToday, DefaultOptions())

			assert.False(t, dates.ContainsISO("2025-02-10"))
			assert.False(t, dates.ContainsISO("2025-02-11"))
			assert.False(t, dates.ContainsISO("2025-02-12"))
			assert.True(t, dates.ContainsISO("2025-02-09"), "day before the block stays bookable")
			assert.True(t, dates.ContainsISO("2025-02-13"), "day after the block stays bookable")
		})
	}
}

func TestResolve_BlockedSundayIsExcluded(t *testing.T) {
	schedule := monSatSchedule()
	schedule.AvailableDays = []int{}
	blocks := []domain.BlockDayRange{
		// 2025-01-12 is a Sunday
		{Title: "Harbor closed", StartDate: "2025-01-12", EndDate: "2025-01-12"},
	}

	dates := Resolve(schedule, blocks, testToday, DefaultOptions())

	assert.True(t, dates.ContainsISO("2025-01-05"))
	assert.False(t, dates.ContainsISO("2025-01-12"))
	assert.True(t, dates.ContainsISO("2025-01-19"))
}

func TestResolve_FullScenario(t *testing.T) {
	schedule := monSatSchedule()
	schedule.BlockedDates = []string{"2025-01-08"}
	blocks := []domain.BlockDayRange{
		{Title: "Winter break", StartDate: "2025-01-15", EndDate: "2025-01-20"},
	}

	dates := Resolve(schedule, blocks, testToday, DefaultOptions())

	assert.True(t, dates.ContainsISO("2025-01-01"))
	assert.True(t, dates.ContainsISO("2025-07-01"))

	// Точечная блокировка тура
	assert.False(t, dates.ContainsISO("2025-01-08"))

	// Глобальная блокировка [15..20] включительно
	for day := 15; day <= 20; day++ {
		iso := time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC).Format(domain.DateFormat)
		assert.False(t, dates.ContainsISO(iso), "%s falls inside the global block", iso)
	}
	assert.True(t, dates.ContainsISO("2025-01-14"))
	assert.True(t, dates.ContainsISO("2025-01-21"))

	// Все воскресенья на месте
	assert.True(t, dates.ContainsISO("2025-01-05"))
	assert.True(t, dates.ContainsISO("2025-01-26"))
}

func TestResolve_Idempotent(t *testing.T) {
	schedule := monSatSchedule()
	schedule.BlockedDates = []string{"2025-03-03"}
	blocks := []domain.BlockDayRange{
		{Title: "Regatta", StartDate: "2025-04-01", EndDate: "2025-04-05"},
	}

	first := Resolve(schedule, blocks, testToday, DefaultOptions())
	second := Resolve(schedule, blocks, testToday, DefaultOptions())

	assert.Equal(t, first, second)
}

func TestDateSet_Sorted(t *testing.T) {
	s := NewDateSet()
	s.Add(time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC))
	s.Add(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))
	s.Add(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, []string{"2025-01-10", "2025-02-01", "2025-03-02"}, s.Sorted())
}
