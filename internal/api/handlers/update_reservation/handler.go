package update_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	updateReservation "github.com/m04kA/monnas-booking/internal/usecase/update_reservation"
)

const (
	msgInvalidID           = "ID de reserva inválido"
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgInvalidDate         = "fecha inválida, se espera AAAA-MM-DD"
	msgInvalidTime         = "horario inválido, se espera HH:MM"
	msgInvalidReservation  = "datos de la reserva inválidos"
	msgReservationNotFound = "reserva no encontrada"
	msgSlotNotAvailable    = "el horario seleccionado ya está ocupado"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /admin/reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /admin/reservations/{id} - Failed to parse request: %v", err)
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
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /admin/reservations/{id} - Reservation not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservation.ErrSlotNotAvailable):
			h.logger.Warn("PUT /admin/reservations/{id} - Slot taken: id=%d, date=%s, time=%s", id, req.SelectedDate, req.SelectedTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /admin/reservations/{id} - Invalid reservation: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidReservation)

		default:
			h.logger.Error("PUT /admin/reservations/{id} - Failed to update: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/reservations/{id} - Reservation updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
