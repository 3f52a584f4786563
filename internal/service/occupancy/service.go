package occupancy

import (
	"context"
	"sort"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// maxRangeDays ограничивает диапазон одного запроса индекса
const maxRangeDays = 62

// Service строит индекс занятых слотов по диапазону дат.
// Ошибка чтения хранилища не передается вызывающему: индекс собирается
// из последнего сохраненного снимка или остается пустым.
type Service struct {
	repo     ReservationRepository
	cache    SnapshotCache
	metrics  Metrics
	policies []domain.OccupancyPolicy
	logger   Logger
}

// NewService создает сервис занятости.
// cache и metrics могут быть nil. policies перечисляет политики, для которых обновляются снимки.
func NewService(
	repo ReservationRepository,
	cache SnapshotCache,
	metrics Metrics,
	policies []domain.OccupancyPolicy,
	logger Logger,
) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		metrics:  metrics,
		policies: uniquePolicies(policies),
		logger:   logger,
	}
}

// Index возвращает занятые слоты по дням диапазона [from, to] для политики.
// excludeID убирает редактируемое бронирование из занятых.
func (s *Service) Index(ctx context.Context, from, to types.Date, policy domain.OccupancyPolicy, excludeID *int64) domain.OccupancyIndex {
	if to.Before(from) {
		from, to = to, from
	}
	if from.DaysUntil(to) > maxRangeDays {
		to = from.AddDays(maxRangeDays)
	}

	reservations, err := s.repo.List(ctx, domain.ReservationsFilter{
		DateFrom: &from,
		DateTo:   &to,
		Statuses: policy.Statuses(),
	})
	if err != nil {
		s.logger.Error("OccupancyIndex: failed to read reservations %s..%s policy=%s: %v", from, to, policy, err)
		return s.fallback(ctx, from, to, policy, excludeID)
	}

	slots := domain.OccupiedSlotsFrom(reservations, policy)
	s.saveSnapshot(ctx, policy, daysBetween(from, to), slots)

	return domain.BuildOccupancyIndex(slots, excludeID)
}

// Partition возвращает разбиение каталога слотов для одной даты
func (s *Service) Partition(ctx context.Context, date types.Date, catalog domain.SlotCatalog, policy domain.OccupancyPolicy, excludeID *int64) domain.SlotPartition {
	return s.Index(ctx, date, date, policy, excludeID).Evaluate(date, catalog)
}

// Refresh перестраивает снимки для переданных дат по всем политикам.
// Вызывается после каждой успешной записи.
func (s *Service) Refresh(ctx context.Context, dates ...types.Date) {
	if s.cache == nil || len(dates) == 0 {
		return
	}

	dates = uniqueDates(dates)
	if len(dates) == 0 {
		return
	}
	from, to := dates[0], dates[len(dates)-1]

	reservations, err := s.repo.List(ctx, domain.ReservationsFilter{DateFrom: &from, DateTo: &to})
	if err != nil {
		s.logger.Warn("OccupancyRefresh: failed to read reservations %s..%s: %v", from, to, err)
		return
	}

	for _, policy := range s.policies {
		s.saveSnapshot(ctx, policy, dates, domain.OccupiedSlotsFrom(reservations, policy))
	}
}

func (s *Service) fallback(ctx context.Context, from, to types.Date, policy domain.OccupancyPolicy, excludeID *int64) domain.OccupancyIndex {
	if s.metrics != nil {
		s.metrics.IncAvailabilityFallback(string(policy))
	}
	if s.cache == nil {
		return domain.OccupancyIndex{}
	}

	snapshot, err := s.cache.Load(ctx, policy, daysBetween(from, to))
	if err != nil {
		s.logger.Error("OccupancyIndex: failed to load snapshot %s..%s policy=%s: %v", from, to, policy, err)
		return domain.OccupancyIndex{}
	}

	slots := make([]domain.OccupiedSlot, 0)
	for _, daySlots := range snapshot {
		slots = append(slots, daySlots...)
	}

	s.logger.Warn("OccupancyIndex: serving last known snapshot for %d/%d days policy=%s",
		len(snapshot), from.DaysUntil(to)+1, policy)
	return domain.BuildOccupancyIndex(slots, excludeID)
}

// saveSnapshot сохраняет снимки дней, включая дни без занятых слотов
func (s *Service) saveSnapshot(ctx context.Context, policy domain.OccupancyPolicy, dates []types.Date, slots []domain.OccupiedSlot) {
	if s.cache == nil {
		return
	}

	byDate := make(map[types.Date][]domain.OccupiedSlot, len(dates))
	for _, d := range dates {
		byDate[d] = []domain.OccupiedSlot{}
	}
	for _, slot := range slots {
		if _, ok := byDate[slot.Date]; ok {
			byDate[slot.Date] = append(byDate[slot.Date], slot)
		}
	}

	if err := s.cache.Save(ctx, policy, byDate); err != nil {
		s.logger.Warn("OccupancySnapshot: failed to save policy=%s: %v", policy, err)
	}
}

func daysBetween(from, to types.Date) []types.Date {
	days := make([]types.Date, 0, from.DaysUntil(to)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

func uniqueDates(dates []types.Date) []types.Date {
	seen := make(map[types.Date]struct{}, len(dates))
	out := make([]types.Date, 0, len(dates))
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func uniquePolicies(policies []domain.OccupancyPolicy) []domain.OccupancyPolicy {
	out := make([]domain.OccupancyPolicy, 0, len(policies))
	for _, p := range policies {
		duplicate := false
		for _, existing := range out {
			if existing == p {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, p)
		}
	}
	return out
}
