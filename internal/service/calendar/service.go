package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/internal/service/calendar/models"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// Service строит месячный календарь бронирований для администратора
type Service struct {
	repo         ReservationRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(repo ReservationRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Month возвращает сетку из 42 дней для месяца со статистикой
func (s *Service) Month(ctx context.Context, year, month int) (*models.CalendarResponse, error) {
	if month < 1 || month > 12 || year < 1970 || year > 9999 {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidMonth, year, month)
	}

	from, to := domain.GridRange(year, time.Month(month))
	reservations, err := s.repo.List(ctx, domain.ReservationsFilter{DateFrom: &from, DateTo: &to})
	if err != nil {
		s.logger.Error("CalendarMonth: failed to read reservations %s..%s: %v", from, to, err)
		return nil, fmt.Errorf("%w: CalendarMonth - repository error: %v", ErrInternal, err)
	}

	today := types.DateOf(s.timeProvider.Now().In(s.location))
	grid := domain.BuildCalendarGrid(year, time.Month(month), reservations, today)

	s.logger.Info("CalendarMonth: %d-%02d with %d reservations in month", year, month, grid.Stats.Total)
	return models.FromDomainGrid(grid), nil
}
