package availability

import (
	"sort"
	"time"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
)

// DateSet множество календарных дат (без компонента времени)
// Ключ - строка YYYY-MM-DD, проверка принадлежности за O(1)
// для рендеринга ячеек календаря
type DateSet map[string]struct{}

// NewDateSet создает пустое множество дат
func NewDateSet() DateSet {
	return make(DateSet)
}

// Add добавляет дату в множество
func (s DateSet) Add(d time.Time) {
	s[d.Format(domain.DateFormat)] = struct{}{}
}

// Contains проверяет, есть ли дата в множестве (сравнение только по дате)
func (s DateSet) Contains(d time.Time) bool {
	_, ok := s[d.Format(domain.DateFormat)]
	return ok
}

// ContainsISO проверяет принадлежность по строке YYYY-MM-DD
func (s DateSet) ContainsISO(date string) bool {
	_, ok := s[date]
	return ok
}

// Len возвращает количество дат в множестве
func (s DateSet) Len() int {
	return len(s)
}

// Sorted возвращает отсортированный список дат в формате YYYY-MM-DD
// Лексикографический порядок ISO-дат совпадает с хронологическим
func (s DateSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
