package starliner

import "errors"

var (
	// ErrUnauthorized возвращается, когда backend отклонил токен или учетные данные
	ErrUnauthorized = errors.New("starliner client: unauthorized")

	// ErrNotFound возвращается, когда запрошенная сущность не найдена
	ErrNotFound = errors.New("starliner client: not found")

	// ErrBackendRejected возвращается, когда backend вернул бизнес-ошибку
	// Текст ошибки backend сохраняется в обертке и показывается пользователю как есть
	ErrBackendRejected = errors.New("starliner client: request rejected")

	// ErrInvalidResponse возвращается при некорректном ответе от backend
	ErrInvalidResponse = errors.New("starliner client: invalid response")

	// ErrInternal возвращается при транспортных и внутренних ошибках клиента
	ErrInternal = errors.New("starliner client: internal error")
)
