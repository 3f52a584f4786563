package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/internal/integrations/eventbus"
	"github.com/m04kA/monnas-booking/internal/service/notifications/models"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// Service держит снимок бронирований на ближайшую неделю и строит по нему уведомления
type Service struct {
	repo         ReservationRepository
	settings     SettingsRepository
	publisher    ReminderPublisher
	timeProvider TimeProvider
	location     *time.Location
	tick         time.Duration
	logger       Logger

	mu          sync.RWMutex
	snapshot    []*domain.Reservation
	snapshotDay types.Date
	remindedAt  map[int64]time.Time // id -> начало визита, о котором уже напомнили
}

// NewService создает новый экземпляр центра уведомлений
func NewService(
	repo ReservationRepository,
	settings SettingsRepository,
	publisher ReminderPublisher,
	location *time.Location,
	tick time.Duration,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		settings:     settings,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		location:     location,
		tick:         tick,
		logger:       logger,
		remindedAt:   make(map[int64]time.Time),
	}
}

// Refresh перечитывает бронирования в окне [сегодня, сегодня+7]
func (s *Service) Refresh(ctx context.Context) error {
	today := types.DateOf(s.timeProvider.Now().In(s.location))
	to := today.AddDays(domain.NotificationWindowDays)

	reservations, err := s.repo.List(ctx, domain.ReservationsFilter{DateFrom: &today, DateTo: &to})
	if err != nil {
		return fmt.Errorf("%w: Refresh - repository error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = reservations
	s.snapshotDay = today

	inSnapshot := make(map[int64]struct{}, len(reservations))
	for _, r := range reservations {
		inSnapshot[r.ID] = struct{}{}
	}
	for id := range s.remindedAt {
		if _, ok := inSnapshot[id]; !ok {
			delete(s.remindedAt, id)
		}
	}
	return nil
}

// List обновляет снимок и возвращает актуальные уведомления.
// Если хранилище недоступно, уведомления строятся по последнему снимку.
func (s *Service) List(ctx context.Context) (*models.NotificationListResponse, error) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("ListNotifications: using last snapshot: %v", err)
	}

	settings := s.currentSettings(ctx)
	now := s.timeProvider.Now().In(s.location)

	list := domain.GenerateNotifications(s.current(), settings, now, s.location)
	return models.FromDomainNotifications(list), nil
}

// Settings возвращает сохраненные настройки уведомлений
func (s *Service) Settings(ctx context.Context) (*models.Settings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.Error("GetNotificationSettings: %v", err)
		return nil, fmt.Errorf("%w: Settings - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSettings(settings), nil
}

// SaveSettings проверяет и сохраняет настройки уведомлений
func (s *Service) SaveSettings(ctx context.Context, req models.Settings) (*models.Settings, error) {
	settings := req.ToDomain()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.settings.Save(ctx, settings); err != nil {
		s.logger.Error("SaveNotificationSettings: %v", err)
		return nil, fmt.Errorf("%w: SaveSettings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SaveNotificationSettings: enabled=%t, reminderMinutes=%d", settings.Enabled, settings.ReminderMinutes)
	return models.FromDomainSettings(settings), nil
}

// Run раз в tick проверяет снимок и публикует напоминания. Блокируется до отмены ctx.
func (s *Service) Run(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("NotificationTicker: initial refresh failed: %v", err)
	}

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("NotificationTicker: stopped")
			return
		case <-ticker.C:
			s.checkReminders(ctx)
		}
	}
}

// checkReminders работает по последнему снимку; хранилище читается только при смене дня
func (s *Service) checkReminders(ctx context.Context) {
	now := s.timeProvider.Now().In(s.location)

	s.mu.RLock()
	stale := s.snapshotDay != types.DateOf(now)
	s.mu.RUnlock()
	if stale {
		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("NotificationTicker: refresh failed: %v", err)
		}
	}

	settings := s.currentSettings(ctx)
	for _, r := range domain.DueReminders(s.current(), settings, now, s.location) {
		startsAt, err := r.StartsAt(s.location)
		if err != nil || !s.markReminded(r.ID, startsAt) {
			continue
		}

		event := eventbus.ReservationReminder{
			ReservationID: r.ID,
			ClientName:    r.ClientName,
			ClientPhone:   r.ClientPhone,
			Date:          r.SelectedDate.String(),
			Time:          r.SelectedTime.Normalize().String(),
			MinutesBefore: settings.ReminderMinutes,
			RaisedAt:      now,
		}
		if err := s.publisher.PublishReminder(ctx, event); err != nil {
			s.logger.Error("NotificationTicker: failed to publish reminder for reservation %d: %v", r.ID, err)
			continue
		}
		s.logger.Info("NotificationTicker: %s", domain.ReminderMessage(r, settings.ReminderMinutes))
	}
}

func (s *Service) markReminded(id int64, startsAt time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.remindedAt[id]; ok && prev.Equal(startsAt) {
		return false
	}
	s.remindedAt[id] = startsAt
	return true
}

func (s *Service) current() []*domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Service) currentSettings(ctx context.Context) domain.NotificationSettings {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.Warn("NotificationSettings: using defaults: %v", err)
		return domain.DefaultNotificationSettings()
	}
	return settings
}
