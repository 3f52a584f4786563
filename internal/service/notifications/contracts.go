package notifications

import (
	"context"
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/internal/integrations/eventbus"
)

// ReservationRepository интерфейс чтения бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// SettingsRepository интерфейс хранилища настроек уведомлений
type SettingsRepository interface {
	Get(ctx context.Context) (domain.NotificationSettings, error)
	Save(ctx context.Context, settings domain.NotificationSettings) error
}

// ReminderPublisher публикует напоминания во внешнюю шину
type ReminderPublisher interface {
	PublishReminder(ctx context.Context, event eventbus.ReservationReminder) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
