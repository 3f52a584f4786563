package notifications

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных настройках
	ErrInvalidInput = errors.New("notifications: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications: internal error")
)
