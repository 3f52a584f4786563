package confirm_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	"github.com/m04kA/monnas-booking/internal/service/reservations"
)

const (
	msgInvalidID           = "ID de reserva inválido"
	msgReservationNotFound = "reserva no encontrada"
)

type Handler struct {
	service       ReservationService
	notifications NotificationCenter
	logger        Logger
}

func NewHandler(service ReservationService, notifications NotificationCenter, logger Logger) *Handler {
	return &Handler{
		service:       service,
		notifications: notifications,
		logger:        logger,
	}
}

// Handle PATCH /api/v1/admin/reservations/{id}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/confirm - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.Confirm(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/confirm - Reservation not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("PATCH /admin/reservations/{id}/confirm - Failed to confirm: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Подтвержденное бронирование перестает быть "опоздавшим"
	if err := h.notifications.Refresh(r.Context()); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/confirm - Notifications not refreshed: %v", err)
	}

	h.logger.Info("PATCH /admin/reservations/{id}/confirm - Reservation confirmed: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
