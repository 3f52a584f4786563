package models

import "time"

// LoginRequest запрос входа в панель администратора
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse выданный токен сессии
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
