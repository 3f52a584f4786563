package confirm_reservation

import (
	"context"

	"github.com/m04kA/monnas-booking/internal/service/reservations/models"
)

type ReservationService interface {
	Confirm(ctx context.Context, id int64) (*models.ReservationResponse, error)
}

// NotificationCenter пересчитывает снимок уведомлений после изменения статуса
type NotificationCenter interface {
	Refresh(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
