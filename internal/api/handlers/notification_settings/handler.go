package notification_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	"github.com/m04kA/monnas-booking/internal/service/notifications"
	"github.com/m04kA/monnas-booking/internal/service/notifications/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidSettings    = "los minutos de recordatorio deben estar entre 1 y 1440"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/admin/notifications/settings
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Settings(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/notifications/settings - Failed to load settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandlePut PUT /api/v1/admin/notifications/settings
func (h *Handler) HandlePut(w http.ResponseWriter, r *http.Request) {
	var req models.Settings
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/notifications/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SaveSettings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("PUT /admin/notifications/settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /admin/notifications/settings - Failed to save settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/notifications/settings - Settings saved: enabled=%t, reminderMinutes=%d",
		result.Enabled, result.ReminderMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
