package get_clients

import (
	"context"

	"github.com/m04kA/monnas-booking/internal/service/analytics/models"
)

type AnalyticsService interface {
	Clients(ctx context.Context, search, loyalty string) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
