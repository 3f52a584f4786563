package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	"github.com/m04kA/monnas-booking/internal/service/analytics"
)

const msgInvalidPeriod = "período inválido, se espera week, month o year"

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard?period=week|month|year
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	result, err := h.service.Dashboard(r.Context(), period)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidInput):
			h.logger.Warn("GET /admin/dashboard - Invalid period: %q", period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /admin/dashboard - Failed to compute dashboard: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/dashboard - Dashboard computed: period=%q", period)
	handlers.RespondJSON(w, http.StatusOK, result)
}
