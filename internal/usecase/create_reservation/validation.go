package create_reservation

import (
	"fmt"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// buildReservation нормализует запрос и проверяет его по правилам канала
func buildReservation(req *Request, rules domain.BookingRules, services *domain.ServiceCatalog, today types.Date) (*domain.Reservation, error) {
	if !req.Channel.IsValid() {
		return nil, fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, req.Channel)
	}

	reservation := &domain.Reservation{
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		ClientEmail:      req.ClientEmail,
		SelectedDate:     req.Date,
		SelectedTime:     req.Time,
		SelectedServices: req.Services,
		Comments:         req.Comments,
		Status:           req.Channel.InitialStatus(),
	}
	reservation.Normalize()

	if err := domain.ValidateReservation(reservation, rules.WritableSlots(req.Channel), services, req.Channel); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Администратор может внести прошедший визит, клиент - нет
	if req.Channel == domain.ChannelPublic && reservation.SelectedDate.Before(today) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, reservation.SelectedDate)
	}

	return reservation, nil
}
