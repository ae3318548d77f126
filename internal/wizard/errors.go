package wizard

import "errors"

var (
	// ErrStepIncomplete возвращается, когда предикат текущего шага не выполнен
	ErrStepIncomplete = errors.New("current step is not complete")

	// ErrNoBackFromFirstStep возвращается при попытке шага назад с первого шага
	ErrNoBackFromFirstStep = errors.New("cannot go back from the first step")

	// ErrWrongStep возвращается, когда операция не относится к текущему шагу
	ErrWrongStep = errors.New("operation is not allowed on the current step")

	// ErrDateNotBookable возвращается при выборе даты вне множества доступных
	ErrDateNotBookable = errors.New("selected date is not bookable")

	// ErrUnknownTimeSlot возвращается при выборе слота, которого нет в расписании тура
	ErrUnknownTimeSlot = errors.New("selected time slot is not offered by this tour")

	// ErrSubmissionInFlight возвращается при повторном Submit во время отправки
	ErrSubmissionInFlight = errors.New("a submission is already in flight")

	// ErrSessionFinished возвращается для завершенной сессии
	ErrSessionFinished = errors.New("booking session is already finished")

	// ErrSessionNotFound возвращается хранилищем для неизвестной сессии
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrTourNotFound возвращается при старте сессии для неизвестного тура
	ErrTourNotFound = errors.New("tour not found")
)
