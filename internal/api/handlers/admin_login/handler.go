package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	"github.com/m04kA/monnas-booking/internal/service/auth"
	"github.com/m04kA/monnas-booking/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidCredentials = "contraseña incorrecta"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Failed to issue session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Session issued, expires at %s", result.ExpiresAt)
	handlers.RespondJSON(w, http.StatusOK, result)
}
