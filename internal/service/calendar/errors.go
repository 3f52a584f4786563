package calendar

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректном годе или месяце
	ErrInvalidMonth = errors.New("calendar: invalid year or month")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)
