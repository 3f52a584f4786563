package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	"github.com/m04kA/monnas-booking/internal/service/reservations"
	"github.com/m04kA/monnas-booking/internal/service/reservations/models"
)

const msgInvalidParams = "parámetros de consulta inválidos"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations
// Query params: search, status (pending | confirmed | all), date (YYYY-MM-DD), все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{
		Search: r.URL.Query().Get("search"),
		Status: handlers.OptionalQuery(r, "status"),
		Date:   handlers.OptionalQuery(r, "date"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations - Reservations retrieved: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
