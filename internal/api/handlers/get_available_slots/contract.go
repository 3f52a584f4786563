package get_available_slots

import (
	"context"

	availableSlots "github.com/m04kA/monnas-booking/internal/usecase/get_available_slots"
)

// GetAvailableSlotsUseCase делит каталог слотов канала на свободные и занятые
type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *availableSlots.Request) (*availableSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
