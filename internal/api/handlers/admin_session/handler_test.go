package admin_session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	handler "github.com/m04kA/monnas-booking/internal/api/handlers/admin_session"
	"github.com/m04kA/monnas-booking/internal/api/middleware"
	"github.com/m04kA/monnas-booking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestHandle(t *testing.T) {
	issued := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	session := domain.NewAdminSession("sess-1", issued, 24*time.Hour)

	request := func(withSession bool) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/session", nil)
		if withSession {
			r = r.WithContext(middleware.WithSession(r.Context(), session))
		}
		return r
	}

	t.Run("active session", func(t *testing.T) {
		h := handler.NewHandlerWithTimeProvider(fixedClock{now: issued.Add(23 * time.Hour)}, nopLogger{})
		rec := httptest.NewRecorder()
		h.Handle(rec, request(true))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"sess-1"`)
		assert.Contains(t, rec.Body.String(), `"remainingSeconds":3600`)
	})

	t.Run("expired session", func(t *testing.T) {
		h := handler.NewHandlerWithTimeProvider(fixedClock{now: issued.Add(25 * time.Hour)}, nopLogger{})
		rec := httptest.NewRecorder()
		h.Handle(rec, request(true))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no session in context", func(t *testing.T) {
		h := handler.NewHandlerWithTimeProvider(fixedClock{now: issued}, nopLogger{})
		rec := httptest.NewRecorder()
		h.Handle(rec, request(false))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
