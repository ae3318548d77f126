package create_booking

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("tour not found")

	// ErrDateNotBookable возвращается, когда дата закрыта для бронирования
	ErrDateNotBookable = errors.New("date is not bookable")

	// ErrInvalidTimeSlot возвращается, когда слот не входит в расписание тура
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrInvalidTravellers возвращается при недопустимом составе группы
	ErrInvalidTravellers = errors.New("invalid traveller counts")

	// ErrInvalidContact возвращается при недопустимых контактных данных
	ErrInvalidContact = errors.New("invalid contact details")

	// ErrBackendRejected возвращается, когда backend отклонил бронирование
	// Сообщение backend сохраняется в обертке
	ErrBackendRejected = errors.New("booking rejected by backend")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
