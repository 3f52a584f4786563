package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	"github.com/m04kA/monnas-booking/internal/domain"
)

const (
	msgMissingToken = "se requiere iniciar sesión"
	msgInvalidToken = "la sesión expiró o no es válida"
)

type sessionKey struct{}

// AdminAuth пропускает запрос только с действующим Bearer токеном администратора.
// Сессия кладется в контекст запроса.
func AdminAuth(auth Authenticator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.Warn("%s %s - Missing bearer token, request_id=%s", r.Method, r.URL.Path, GetRequestID(r.Context()))
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session, err := auth.Authenticate(strings.TrimSpace(token))
			if err != nil {
				logger.Warn("%s %s - Rejected token: %v, request_id=%s", r.Method, r.URL.Path, err, GetRequestID(r.Context()))
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// WithSession кладет сессию администратора в контекст
func WithSession(ctx context.Context, session domain.AdminSession) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSession возвращает сессию администратора из контекста
func GetSession(ctx context.Context) (domain.AdminSession, bool) {
	session, ok := ctx.Value(sessionKey{}).(domain.AdminSession)
	return session, ok
}
