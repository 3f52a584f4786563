package get_clients

import (
	"errors"
	"net/http"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	"github.com/m04kA/monnas-booking/internal/service/analytics"
)

const msgInvalidLoyalty = "nivel de fidelidad inválido"

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

// Handle GET /api/v1/admin/clients
// Query params: search, loyalty (nuevo | regular | vip | diamante | all), опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	loyalty := r.URL.Query().Get("loyalty")

	result, err := h.service.Clients(r.Context(), search, loyalty)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidInput):
			h.logger.Warn("GET /admin/clients - Invalid loyalty: %q", loyalty)
			handlers.RespondBadRequest(w, msgInvalidLoyalty)

		default:
			h.logger.Error("GET /admin/clients - Failed to build client profiles: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/clients - Clients retrieved: count=%d", len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, result)
}
