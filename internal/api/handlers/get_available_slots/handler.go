package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	"github.com/m04kA/monnas-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/monnas-booking/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate      = "fecha inválida, se espera AAAA-MM-DD"
	msgInvalidExcludeID = "excludeId inválido"
	msgInvalidRequest   = "parámetros de consulta inválidos"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	channel domain.Channel
	logger  Logger
}

// NewHandler создает обработчик для канала: публичная страница или панель администратора
func NewHandler(useCase GetAvailableSlotsUseCase, channel domain.Channel, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		channel: channel,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD
// Handle GET /api/v1/admin/availability?date=YYYY-MM-DD&excludeId=42
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET %s - Invalid date: %v", r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{Date: date, Channel: h.channel}

	if raw := r.URL.Query().Get("excludeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET %s - Invalid excludeId: %v", r.URL.Path, err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		req.ExcludeID = &id
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET %s - Invalid request: %v", r.URL.Path, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET %s - Failed to get slots: date=%s, error=%v", r.URL.Path, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET %s - Slots retrieved: date=%s, available=%d, booked=%d",
		r.URL.Path, date, len(result.Available), len(result.Booked))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
