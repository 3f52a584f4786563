package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном пароле администратора
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUnauthorized возвращается при отсутствующем, поддельном или истекшем токене
	ErrUnauthorized = errors.New("auth: unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
