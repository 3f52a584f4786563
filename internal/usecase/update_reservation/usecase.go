package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/monnas-booking/internal/domain"
	reservationRepo "github.com/m04kA/monnas-booking/internal/infra/storage/reservation"
	"github.com/m04kA/monnas-booking/pkg/txmanager"
)

// UseCase use case для редактирования бронирования из панели администратора
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	occupancy       OccupancyRefresher
	notifications   NotificationCenter
	rules           domain.BookingRules
	services        *domain.ServiceCatalog
	conflictCheck   bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	occupancy OccupancyRefresher,
	notifications NotificationCenter,
	rules domain.BookingRules,
	services *domain.ServiceCatalog,
	conflictCheck bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		occupancy:       occupancy,
		notifications:   notifications,
		rules:           rules,
		services:        services,
		conflictCheck:   conflictCheck,
		logger:          logger,
	}
}

// Execute сохраняет любые поля бронирования, включая статус.
// Занятость проверяется по политике администратора без учета самого бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, date=%s, time=%s, status=%s", req.ID, req.Date, req.Time, req.Status)

	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	var previous, updated *domain.Reservation

	err := uc.run(ctx, func(txCtx context.Context) error {
		// 1. Текущее состояние
		current, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
				return ErrReservationNotFound
			}
			return uc.storageError(err, "failed to get reservation")
		}
		previous = current

		// 2. Новое состояние
		next := &domain.Reservation{
			ID:               current.ID,
			ClientName:       req.ClientName,
			ClientPhone:      req.ClientPhone,
			ClientEmail:      req.ClientEmail,
			SelectedDate:     req.Date,
			SelectedTime:     req.Time,
			SelectedServices: req.Services,
			Comments:         req.Comments,
			Status:           req.Status,
		}
		if next.Status == "" {
			next.Status = current.Status
		}
		next.Normalize()

		if err := domain.ValidateReservation(next, uc.rules.WritableSlots(domain.ChannelAdmin), uc.services, domain.ChannelAdmin); err != nil {
			uc.logger.Warn("UpdateReservation: validation failed: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// 3. Проверка слота без учета редактируемого бронирования
		if uc.conflictCheck {
			if err := uc.checkSlot(txCtx, next); err != nil {
				return err
			}
		}

		// 4. Запись
		updated, err = uc.reservationRepo.Update(txCtx, next)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return uc.storageError(err, "failed to update reservation")
		}
		return nil
	})

	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("UpdateReservation: concurrent write for id=%d: %v", req.ID, err)
			return nil, fmt.Errorf("%w: concurrent booking", ErrSlotNotAvailable)
		}
		return nil, err
	}

	uc.logger.Info("UpdateReservation: reservation id=%d saved", updated.ID)

	uc.occupancy.Refresh(ctx, previous.SelectedDate, updated.SelectedDate)
	if err := uc.notifications.Refresh(ctx); err != nil {
		uc.logger.Warn("UpdateReservation: notification snapshot not refreshed: %v", err)
	}

	return &Response{Reservation: updated}, nil
}

// run выполняет fn в сериализуемой транзакции, если включена проверка конфликтов
func (uc *UseCase) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if !uc.conflictCheck {
		return fn(ctx)
	}
	return uc.txManager.DoSerializable(ctx, fn)
}

func (uc *UseCase) checkSlot(ctx context.Context, next *domain.Reservation) error {
	policy := uc.rules.Admin.Policy
	date := next.SelectedDate

	existing, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{
		DateFrom: &date,
		DateTo:   &date,
		Statuses: policy.Statuses(),
	})
	if err != nil {
		return uc.storageError(err, "failed to read reservations")
	}

	partition := domain.EvaluateSlots(existing, domain.SlotCatalog{next.SelectedTime}, date, &next.ID, policy)
	if !partition.IsAvailable(next.SelectedTime) {
		uc.logger.Warn("UpdateReservation: slot %s %s is taken", date, next.SelectedTime)
		return fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, date, next.SelectedTime)
	}
	return nil
}

// storageError сохраняет цепочку ошибок сериализации для менеджера транзакций
func (uc *UseCase) storageError(err error, msg string) error {
	if txmanager.IsSerializationFailure(err) {
		return err
	}
	uc.logger.Error("UpdateReservation: %s: %v", msg, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}
