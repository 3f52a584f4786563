package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается при попытке записаться на прошедшую дату с публичной страницы
	ErrInvalidDate = errors.New("create_reservation: date is in the past")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят или транзакция проиграла конкурентной записи
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
