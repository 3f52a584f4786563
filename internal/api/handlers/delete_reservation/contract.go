package delete_reservation

import "context"

type ReservationService interface {
	Delete(ctx context.Context, id int64) error
}

// NotificationCenter пересчитывает снимок уведомлений после удаления
type NotificationCenter interface {
	Refresh(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
