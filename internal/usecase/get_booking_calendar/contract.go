package get_booking_calendar

import (
	"context"
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// OccupancyIndex интерфейс индекса занятых слотов
type OccupancyIndex interface {
	Index(ctx context.Context, from, to types.Date, policy domain.OccupancyPolicy, excludeID *int64) domain.OccupancyIndex
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
