package get_booking_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// UseCase use case для построения календаря публичной страницы бронирования
type UseCase struct {
	occupancy    OccupancyIndex
	rules        domain.ChannelRules
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// rules - каталог слотов и политика занятости публичной страницы
func NewUseCase(occupancy OccupancyIndex, rules domain.ChannelRules, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		occupancy:    occupancy,
		rules:        rules,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит 42 дня сетки и оценивает занятость каждого дня одним чтением индекса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 1970 || req.Year > 9999 {
		uc.logger.Warn("GetBookingCalendar: invalid month %d-%d", req.Year, req.Month)
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidMonth, req.Year, req.Month)
	}

	month := time.Month(req.Month)
	from, to := domain.GridRange(req.Year, month)
	index := uc.occupancy.Index(ctx, from, to, uc.rules.Policy, nil)
	today := types.DateOf(uc.timeProvider.Now().In(uc.location))

	resp := &Response{
		Year:  req.Year,
		Month: req.Month,
		Days:  make([]Day, 0, domain.CalendarGridDays),
	}

	for d := from; !d.After(to); d = d.AddDays(1) {
		partition := index.Evaluate(d, uc.rules.Slots)
		resp.Days = append(resp.Days, Day{
			Date:           d,
			InMonth:        d.SameMonth(req.Year, month),
			IsToday:        d == today,
			Booked:         partition.Booked,
			AvailableCount: len(partition.Available),
			FullyBooked:    partition.FullyBooked,
			Selectable:     !d.Before(today) && !partition.FullyBooked,
		})
	}

	uc.logger.Info("GetBookingCalendar: %d-%02d built from %s to %s", req.Year, req.Month, from, to)
	return resp, nil
}
