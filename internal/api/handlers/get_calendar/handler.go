package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	"github.com/m04kA/monnas-booking/internal/service/calendar"
)

const msgInvalidMonth = "año o mes inválido"

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/calendar?year=2025&month=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, month, err := handlers.QueryMonth(r)
	if err != nil {
		h.logger.Warn("GET /admin/calendar - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.service.Month(r.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidMonth):
			h.logger.Warn("GET /admin/calendar - Invalid month: %d-%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /admin/calendar - Failed to build calendar: %d-%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/calendar - Calendar built: %d-%02d", year, month)
	handlers.RespondJSON(w, http.StatusOK, result)
}
