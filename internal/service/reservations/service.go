package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/monnas-booking/internal/domain"
	reservationRepo "github.com/m04kA/monnas-booking/internal/infra/storage/reservation"
	"github.com/m04kA/monnas-booking/internal/service/reservations/models"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// Service сервис управления бронированиями из административной панели
type Service struct {
	repo      ReservationRepository
	occupancy OccupancyRefresher
	logger    Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(repo ReservationRepository, occupancy OccupancyRefresher, logger Logger) *Service {
	return &Service{
		repo:      repo,
		occupancy: occupancy,
		logger:    logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования с фильтрами, сначала новые
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	filter := domain.ReservationsFilter{
		Search:      strings.TrimSpace(req.Search),
		NewestFirst: true,
	}

	if req.Status != nil && *req.Status != "" && *req.Status != "all" {
		status := domain.ReservationStatus(*req.Status)
		if !status.IsValid() {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		filter.Statuses = []domain.ReservationStatus{status}
	}

	if req.Date != nil && *req.Date != "" {
		date, err := types.ParseDate(*req.Date)
		if err != nil {
			s.logger.Warn("List: invalid date=%s", *req.Date)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.DateFrom = &date
		filter.DateTo = &date
	}

	reservations, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations (search=%q)", len(reservations), filter.Search)
	return models.FromDomainReservationList(reservations), nil
}

// Confirm переводит бронирование pending → confirmed.
// Повторное подтверждение ничего не меняет.
func (s *Service) Confirm(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.get(ctx, "Confirm", id)
	if err != nil {
		return nil, err
	}

	if reservation.IsConfirmed() {
		s.logger.Info("Confirm: reservation id=%d already confirmed", id)
		return models.FromDomainReservation(reservation), nil
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Confirm: reservation id=%d not found during update", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Confirm: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	reservation.Status = domain.StatusConfirmed
	s.occupancy.Refresh(ctx, reservation.SelectedDate)

	s.logger.Info("Confirm: reservation id=%d confirmed", id)
	return models.FromDomainReservation(reservation), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	reservation, err := s.get(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found during delete", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.occupancy.Refresh(ctx, reservation.SelectedDate)

	s.logger.Info("Delete: reservation id=%d deleted", id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}
