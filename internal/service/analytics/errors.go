package analytics

import "errors"

var (
	// ErrInvalidInput возвращается при неизвестном периоде или уровне лояльности
	ErrInvalidInput = errors.New("analytics: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("analytics: internal error")
)
