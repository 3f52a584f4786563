package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/internal/service/analytics/models"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// Периоды дашборда
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Service считает статистику для административной панели
type Service struct {
	repo         ReservationRepository
	services     *domain.ServiceCatalog
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(repo ReservationRepository, services *domain.ServiceCatalog, location *time.Location, logger Logger) *Service {
	return &Service{
		repo:         repo,
		services:     services,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Dashboard возвращает сводку по бронированиям за период (week, month, year; пусто = month)
func (s *Service) Dashboard(ctx context.Context, period string) (*models.DashboardResponse, error) {
	days, err := periodDays(period)
	if err != nil {
		return nil, err
	}

	today := s.today()
	from := today.AddDays(-days)

	reservations, err := s.repo.List(ctx, domain.ReservationsFilter{DateFrom: &from})
	if err != nil {
		s.logger.Error("Dashboard: failed to read reservations since %s: %v", from, err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	stats := domain.ComputeDashboard(reservations, s.services, today)

	s.logger.Info("Dashboard: period=%s, reservations=%d", period, stats.Total)
	return models.FromDomainDashboard(stats), nil
}

// Clients возвращает профили клиентов с фильтрами по строке поиска и уровню лояльности.
// Статистика считается по всем клиентам, без учета фильтров.
func (s *Service) Clients(ctx context.Context, search, loyalty string) (*models.ClientListResponse, error) {
	var level domain.LoyaltyLevel
	if loyalty != "" && loyalty != "all" {
		l, ok := domain.ParseLoyaltyLevel(loyalty)
		if !ok {
			return nil, fmt.Errorf("%w: unknown loyalty level %q", ErrInvalidInput, loyalty)
		}
		level = l
	}

	reservations, err := s.repo.List(ctx, domain.ReservationsFilter{})
	if err != nil {
		s.logger.Error("Clients: failed to read reservations: %v", err)
		return nil, fmt.Errorf("%w: Clients - repository error: %v", ErrInternal, err)
	}

	profiles := domain.BuildClientProfiles(reservations, s.services)
	stats := domain.SummarizeClients(profiles, s.today())

	filtered := make([]domain.ClientProfile, 0, len(profiles))
	for _, p := range profiles {
		if level != "" && p.Loyalty != level {
			continue
		}
		if !p.Matches(search) {
			continue
		}
		filtered = append(filtered, p)
	}

	s.logger.Info("Clients: %d of %d clients matched", len(filtered), len(profiles))
	return models.FromDomainClients(filtered, stats), nil
}

func (s *Service) today() types.Date {
	return types.DateOf(s.timeProvider.Now().In(s.location))
}

func periodDays(period string) (int, error) {
	switch period {
	case PeriodWeek:
		return domain.WeekWindowDays, nil
	case "", PeriodMonth:
		return domain.MonthWindowDays, nil
	case PeriodYear:
		return domain.YearWindowDays, nil
	default:
		return 0, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, period)
	}
}
