package get_available_slots

import (
	"context"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// OccupancyIndex интерфейс индекса занятых слотов
type OccupancyIndex interface {
	Partition(ctx context.Context, date types.Date, catalog domain.SlotCatalog, policy domain.OccupancyPolicy, excludeID *int64) domain.SlotPartition
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
