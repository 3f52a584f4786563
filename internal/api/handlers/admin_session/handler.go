package admin_session

import (
	"net/http"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	"github.com/m04kA/monnas-booking/internal/api/middleware"
)

const msgNoSession = "la sesión expiró o no es válida"

type Handler struct {
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// NewHandlerWithTimeProvider создает handler с заданным провайдером времени (для тестов)
func NewHandlerWithTimeProvider(timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/admin/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	now := h.timeProvider.Now()
	if !ok || !session.IsValid(now) {
		h.logger.Warn("GET /admin/session - No active session, request_id=%s", middleware.GetRequestID(r.Context()))
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}

	resp := fromDomainSession(session, now)
	h.logger.Info("GET /admin/session - Session %s: remaining=%ds", resp.ID, resp.RemainingSeconds)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
