package get_calendar

import (
	"context"

	"github.com/m04kA/monnas-booking/internal/service/calendar/models"
)

type CalendarService interface {
	Month(ctx context.Context, year, month int) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
