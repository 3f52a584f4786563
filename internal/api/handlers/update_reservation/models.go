package update_reservation

import (
	"errors"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/internal/service/reservations/models"
	updateReservation "github.com/m04kA/monnas-booking/internal/usecase/update_reservation"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// UpdateReservationRequest HTTP request model
type UpdateReservationRequest struct {
	ClientName       string   `json:"clientName"`
	ClientPhone      string   `json:"clientPhone"`
	ClientEmail      *string  `json:"clientEmail,omitempty"`
	SelectedDate     string   `json:"selectedDate"`
	SelectedTime     string   `json:"selectedTime"`
	SelectedServices []string `json:"selectedServices"`
	Comments         *string  `json:"comments,omitempty"`
	Status           string   `json:"status,omitempty"` // пусто = оставить текущий
}

var (
	errInvalidDate = errors.New("selectedDate must be YYYY-MM-DD")
	errInvalidTime = errors.New("selectedTime must be HH:MM")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(id int64) (*updateReservation.Request, error) {
	date, err := types.ParseDate(r.SelectedDate)
	if err != nil {
		return nil, errInvalidDate
	}

	t, err := types.NewTimeStringFromString(r.SelectedTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &updateReservation.Request{
		ID:          id,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		Date:        date,
		Time:        t,
		Services:    r.SelectedServices,
		Comments:    r.Comments,
		Status:      domain.ReservationStatus(r.Status),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *models.ReservationResponse {
	return models.FromDomainReservation(resp.Reservation)
}
