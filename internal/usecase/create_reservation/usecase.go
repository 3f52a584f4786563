package create_reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/internal/integrations/eventbus"
	"github.com/m04kA/monnas-booking/pkg/ptr"
	"github.com/m04kA/monnas-booking/pkg/txmanager"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// publishTimeout ограничивает ожидание брокера, запись уже сохранена
const publishTimeout = 3 * time.Second

// Options настройки use case
type Options struct {
	Rules         domain.BookingRules
	Services      *domain.ServiceCatalog
	Location      *time.Location
	ConflictCheck bool // проверять занятость слота в сериализуемой транзакции
}

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	occupancy       OccupancyRefresher
	notifications   NotificationCenter
	publisher       EventPublisher
	handoff         HandoffBuilder
	metrics         Metrics
	opts            Options
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	occupancy OccupancyRefresher,
	notifications NotificationCenter,
	publisher EventPublisher,
	handoff HandoffBuilder,
	metrics Metrics,
	opts Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		occupancy:       occupancy,
		notifications:   notifications,
		publisher:       publisher,
		handoff:         handoff,
		metrics:         metrics,
		opts:            opts,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// С включенной проверкой конфликтов проверка слота и запись идут в одной
// сериализуемой транзакции; без нее запись выполняется без проверки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: channel=%s, date=%s, time=%s, services=%v",
		req.Channel, req.Date, req.Time, req.Services)

	// 1. Валидация входных данных
	today := types.DateOf(uc.timeProvider.Now().In(uc.opts.Location))
	reservation, err := buildReservation(req, uc.opts.Rules, uc.opts.Services, today)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Запись
	var created *domain.Reservation
	if uc.opts.ConflictCheck {
		created, err = uc.createChecked(ctx, req.Channel, reservation)
	} else {
		created, err = uc.reservationRepo.Create(ctx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			err = fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d with status %s", created.ID, created.Status)

	// 3. Побочные эффекты после записи, их ошибки не отменяют бронирование
	uc.afterCreate(ctx, req.Channel, created)

	resp := &Response{Reservation: created}
	if req.Channel == domain.ChannelPublic && uc.handoff.Enabled() {
		resp.WhatsAppURL = ptr.Ptr(uc.handoff.URL(created))
	}
	return resp, nil
}

// createChecked читает занятые слоты дня с блокировкой и пишет в той же транзакции
func (uc *UseCase) createChecked(ctx context.Context, channel domain.Channel, reservation *domain.Reservation) (*domain.Reservation, error) {
	policy := uc.opts.Rules.For(channel).Policy
	date := reservation.SelectedDate

	var created *domain.Reservation
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирования дня (FOR UPDATE внутри транзакции)
		existing, err := uc.reservationRepo.List(txCtx, domain.ReservationsFilter{
			DateFrom: &date,
			DateTo:   &date,
			Statuses: policy.Statuses(),
		})
		if err != nil {
			if txmanager.IsSerializationFailure(err) {
				return err
			}
			uc.logger.Error("CreateReservation: failed to read reservations for %s: %v", date, err)
			return fmt.Errorf("%w: failed to read reservations: %v", ErrInternal, err)
		}

		// 2.2. Проверка слота по политике канала
		partition := domain.EvaluateSlots(existing, domain.SlotCatalog{reservation.SelectedTime}, date, nil, policy)
		if !partition.IsAvailable(reservation.SelectedTime) {
			uc.logger.Warn("CreateReservation: slot %s %s is taken", date, reservation.SelectedTime)
			return fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, date, reservation.SelectedTime)
		}

		// 2.3. Запись
		created, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if txmanager.IsSerializationFailure(err) {
				return err
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateReservation: concurrent booking for %s %s: %v", date, reservation.SelectedTime, err)
			return nil, fmt.Errorf("%w: concurrent booking", ErrSlotNotAvailable)
		}
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) afterCreate(ctx context.Context, channel domain.Channel, created *domain.Reservation) {
	uc.metrics.IncReservationCreated(string(channel))
	uc.occupancy.Refresh(ctx, created.SelectedDate)

	if err := uc.notifications.Refresh(ctx); err != nil {
		uc.logger.Warn("CreateReservation: notification snapshot not refreshed: %v", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	event := eventbus.ReservationCreated{
		ReservationID: created.ID,
		Channel:       string(channel),
		Status:        string(created.Status),
		ClientName:    created.ClientName,
		ClientPhone:   created.ClientPhone,
		Date:          created.SelectedDate.String(),
		Time:          created.SelectedTime.Normalize().String(),
		Services:      created.SelectedServices,
		CreatedAt:     created.CreatedAt,
	}
	if err := uc.publisher.PublishReservationCreated(pubCtx, event); err != nil {
		uc.logger.Error("CreateReservation: failed to publish event for id=%d: %v", created.ID, err)
	}
}
