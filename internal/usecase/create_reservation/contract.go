package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/internal/integrations/eventbus"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// OccupancyRefresher перестраивает снимки занятости после изменений
type OccupancyRefresher interface {
	Refresh(ctx context.Context, dates ...types.Date)
}

// NotificationCenter перечитывает снимок для уведомлений администратора
type NotificationCenter interface {
	Refresh(ctx context.Context) error
}

// EventPublisher публикует события о новых бронированиях
type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, event eventbus.ReservationCreated) error
}

// HandoffBuilder строит ссылку на WhatsApp с текстом бронирования
type HandoffBuilder interface {
	Enabled() bool
	URL(r *domain.Reservation) string
}

// Metrics интерфейс учета созданных бронирований
type Metrics interface {
	IncReservationCreated(channel string)
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
