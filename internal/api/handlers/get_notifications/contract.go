package get_notifications

import (
	"context"

	"github.com/m04kA/monnas-booking/internal/service/notifications/models"
)

type NotificationService interface {
	List(ctx context.Context) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
