package middleware

import (
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
)

// HTTPObserver записывает метрики HTTP запросов
type HTTPObserver interface {
	ObserveHTTP(method, route, status string, duration time.Duration)
}

// Authenticator проверяет токен административной сессии
type Authenticator interface {
	Authenticate(token string) (domain.AdminSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
