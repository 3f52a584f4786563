package get_available_slots

import (
	"context"

	"github.com/m04kA/monnas-booking/internal/domain"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	occupancy OccupancyIndex
	rules     domain.BookingRules
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(occupancy OccupancyIndex, rules domain.BookingRules, logger Logger) *UseCase {
	return &UseCase{
		occupancy: occupancy,
		rules:     rules,
		logger:    logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Ошибки чтения хранилища не возвращаются: индекс деградирует до последнего снимка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	rules := uc.rules.For(req.Channel)
	partition := uc.occupancy.Partition(ctx, req.Date, rules.Slots, rules.Policy, req.ExcludeID)

	uc.logger.Info("GetAvailableSlots: channel=%s, date=%s, available=%d/%d",
		req.Channel, req.Date, len(partition.Available), len(rules.Slots))

	return &Response{
		Date:        partition.Date,
		Available:   partition.Available,
		Booked:      partition.Booked,
		FullyBooked: partition.FullyBooked,
	}, nil
}
