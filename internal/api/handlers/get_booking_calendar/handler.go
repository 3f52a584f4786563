package get_booking_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	getBookingCalendar "github.com/m04kA/monnas-booking/internal/usecase/get_booking_calendar"
)

const msgInvalidMonth = "año o mes inválido"

type Handler struct {
	useCase GetBookingCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/calendar?year=2025&month=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, month, err := handlers.QueryMonth(r)
	if err != nil {
		h.logger.Warn("GET /availability/calendar - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookingCalendar.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getBookingCalendar.ErrInvalidMonth):
			h.logger.Warn("GET /availability/calendar - Invalid month: %d-%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /availability/calendar - Failed to build calendar: %d-%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/calendar - Calendar built: %d-%02d", year, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
