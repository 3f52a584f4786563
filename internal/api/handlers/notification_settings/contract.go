package notification_settings

import (
	"context"

	"github.com/m04kA/monnas-booking/internal/service/notifications/models"
)

type SettingsService interface {
	Settings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, req models.Settings) (*models.Settings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
