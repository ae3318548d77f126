package availability

import (
	"time"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

// Options параметры резолвера доступности
type Options struct {
	// SundayAlwaysBookable форсирует доступность воскресений даже когда
	// воскресенье не входит в availableDays расписания. Так исторически
	// ведет себя продукт; выключается через конфиг [wizard]
	SundayAlwaysBookable bool
}

// DefaultOptions поведение продакшена: воскресенье всегда доступно
func DefaultOptions() Options {
	return Options{SundayAlwaysBookable: true}
}

// Resolve вычисляет множество дат, открытых для бронирования тура
// в окне [today, today + 6 календарных месяцев] включительно.
//
// Чистая функция своих аргументов: без побочных эффектов, безопасно
// пересчитывать на каждый запрос. Все сравнения - только по дате.
//
// Правила:
//  1. Прошедшие даты исключаются всегда.
//  2. Без расписания доступна каждая дата окна, включая воскресенья.
//  3. С расписанием дата проходит, если её день недели входит в
//     availableDays (или это воскресенье при включенном override),
//     не входит в blockedDates тура и не попадает ни в один глобальный
//     BlockDayRange.
func Resolve(schedule *domain.TourSchedule, blocks []domain.BlockDayRange, today time.Time, opts Options) DateSet {
	available := NewDateSet()

	// Обнуляем время: окно и все сравнения работают с полуночью
	start := truncateToDay(today)
	// 6 календарных месяцев, не 180 дней
	end := start.AddDate(0, domain.BookingHorizonMonths, 0)

	// --- Fallback: у тура нет расписания ---
	if schedule == nil {
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if dateBlocked(d, blocks) {
				continue
			}
			available.Add(d)
		}
		return available
	}

	// --- Расписание задано ---
	allowedDays := make(map[int]struct{}, len(schedule.AvailableDays))
	for _, day := range schedule.AvailableDays {
		allowedDays[day] = struct{}{}
	}

	blockedDates := make(map[string]struct{}, len(schedule.BlockedDates))
	for _, d := range schedule.BlockedDates {
		blockedDates[d] = struct{}{}
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		weekday := int(d.Weekday()) // 0 = Sunday

		_, allowed := allowedDays[weekday]
		if opts.SundayAlwaysBookable && weekday == 0 {
			allowed = true
		}
		if !allowed {
			continue
		}

		// Точечные исключения самого тура
		if _, blocked := blockedDates[d.Format(domain.DateFormat)]; blocked {
			continue
		}

		// Глобальные блокировки поверх расписания тура
		if dateBlocked(d, blocks) {
			continue
		}

		available.Add(d)
	}

	return available
}

// dateBlocked проверяет попадание даты в любой глобальный диапазон блокировки
func dateBlocked(d time.Time, blocks []domain.BlockDayRange) bool {
	for i := range blocks {
		if blocks[i].Contains(d) {
			return true
		}
	}
	return false
}

// truncateToDay обнуляет компонент времени
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
