package delete_reservation

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

// Handle DELETE /api/v1/admin/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /admin/reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /admin/reservations/{id} - Reservation not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("DELETE /admin/reservations/{id} - Failed to delete: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if err := h.notifications.Refresh(r.Context()); err != nil {
		h.logger.Warn("DELETE /admin/reservations/{id} - Notifications not refreshed: %v", err)
	}

	h.logger.Info("DELETE /admin/reservations/{id} - Reservation deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
