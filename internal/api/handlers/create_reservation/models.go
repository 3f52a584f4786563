package create_reservation

import (
	"errors"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/internal/service/reservations/models"
	createReservation "github.com/m04kA/monnas-booking/internal/usecase/create_reservation"
	"github.com/m04kA/monnas-booking/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ClientName       string   `json:"clientName"`
	ClientPhone      string   `json:"clientPhone"`
	ClientEmail      *string  `json:"clientEmail,omitempty"`
	SelectedDate     string   `json:"selectedDate"` // "2025-03-10"
	SelectedTime     string   `json:"selectedTime"` // "09:30"
	SelectedServices []string `json:"selectedServices"`
	Comments         *string  `json:"comments,omitempty"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Reservation *models.ReservationResponse `json:"reservation"`
	WhatsAppURL *string                     `json:"whatsappUrl,omitempty"`
}

var (
	errInvalidDate = errors.New("selectedDate must be YYYY-MM-DD")
	errInvalidTime = errors.New("selectedTime must be HH:MM")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateReservationRequest) ToUseCaseRequest(channel domain.Channel) (*createReservation.Request, error) {
	date, err := types.ParseDate(r.SelectedDate)
	if err != nil {
		return nil, errInvalidDate
	}

	t, err := types.NewTimeStringFromString(r.SelectedTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createReservation.Request{
		Channel:     channel,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		Date:        date,
		Time:        t,
		Services:    r.SelectedServices,
		Comments:    r.Comments,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		Reservation: models.FromDomainReservation(resp.Reservation),
		WhatsAppURL: resp.WhatsAppURL,
	}
}
