package occupancy

import (
	"context"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// ReservationRepository интерфейс чтения бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// SnapshotCache интерфейс хранилища последних известных снимков занятости
type SnapshotCache interface {
	Save(ctx context.Context, policy domain.OccupancyPolicy, byDate map[types.Date][]domain.OccupiedSlot) error
	Load(ctx context.Context, policy domain.OccupancyPolicy, dates []types.Date) (map[types.Date][]domain.OccupiedSlot, error)
}

// Metrics интерфейс учета деградации чтения
type Metrics interface {
	IncAvailabilityFallback(policy string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
