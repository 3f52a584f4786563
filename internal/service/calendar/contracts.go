package calendar

import (
	"context"
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
)

// ReservationRepository интерфейс чтения бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
