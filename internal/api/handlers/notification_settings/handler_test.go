package notification_settings_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	handler "github.com/m04kA/monnas-booking/internal/api/handlers/notification_settings"
	"github.com/m04kA/monnas-booking/internal/api/handlers/notification_settings/mocks"
	"github.com/m04kA/monnas-booking/internal/service/notifications"
	"github.com/m04kA/monnas-booking/internal/service/notifications/models"
)

func TestHandleGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSettingsService(ctrl)

	service.EXPECT().Settings(gomock.Any()).Return(&models.Settings{Enabled: true, ReminderMinutes: 30}, nil)

	rec := httptest.NewRecorder()
	handler.NewHandler(service, nopLogger{}).HandleGet(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.Settings{Enabled: true, ReminderMinutes: 30}, body)
}

func TestHandlePut(t *testing.T) {
	payload := `{"enabled":true,"newReservations":true,"upcomingReminders":false,"reminderMinutes":15,"sound":false,"desktop":true}`
	want := models.Settings{Enabled: true, NewReservations: true, ReminderMinutes: 15, Desktop: true}

	ctrl := gomock.NewController(t)
	service := mocks.NewMockSettingsService(ctrl)
	h := handler.NewHandler(service, nopLogger{})

	service.EXPECT().SaveSettings(gomock.Any(), want).Return(&want, nil)
	rec := httptest.NewRecorder()
	h.HandlePut(rec, httptest.NewRequest(http.MethodPut, "/", strings.NewReader(payload)))
	assert.Equal(t, http.StatusOK, rec.Code)

	service.EXPECT().SaveSettings(gomock.Any(), gomock.Any()).Return(nil, notifications.ErrInvalidInput)
	rec = httptest.NewRecorder()
	h.HandlePut(rec, httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"reminderMinutes":0}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.HandlePut(rec, httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"reminderMinutes":"soon"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
