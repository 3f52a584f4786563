package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	"github.com/m04kA/monnas-booking/internal/domain"
	createReservation "github.com/m04kA/monnas-booking/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "fecha inválida, se espera AAAA-MM-DD"
	msgInvalidTime        = "horario inválido, se espera HH:MM"
	msgInvalidReservation = "datos de la reserva inválidos"
	msgPastDate           = "no se puede reservar en una fecha pasada"
	msgSlotNotAvailable   = "el horario seleccionado ya no está disponible"
)

type Handler struct {
	useCase CreateReservationUseCase
	channel domain.Channel
	logger  Logger
}

// NewHandler создает обработчик для канала: публичная страница (pending) или панель администратора (confirmed)
func NewHandler(useCase CreateReservationUseCase, channel domain.Channel, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		channel: channel,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
// Handle POST /api/v1/admin/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST %s - Invalid request body: %v", r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.channel)
	if err != nil {
		h.logger.Warn("POST %s - Failed to parse request: %v", r.URL.Path, err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST %s - Slot not available: date=%s, time=%s", r.URL.Path, req.SelectedDate, req.SelectedTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST %s - Past date: date=%s", r.URL.Path, req.SelectedDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST %s - Invalid reservation: %v", r.URL.Path, err)
			handlers.RespondBadRequest(w, msgInvalidReservation)

		default:
			h.logger.Error("POST %s - Failed to create reservation: date=%s, time=%s, error=%v",
				r.URL.Path, req.SelectedDate, req.SelectedTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST %s - Reservation created: id=%d, channel=%s, date=%s, time=%s",
		r.URL.Path, result.Reservation.ID, h.channel, req.SelectedDate, req.SelectedTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
