package get_dashboard

import (
	"context"

	"github.com/m04kA/monnas-booking/internal/service/analytics/models"
)

type AnalyticsService interface {
	Dashboard(ctx context.Context, period string) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
