package get_calendar_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	handler "github.com/m04kA/monnas-booking/internal/api/handlers/get_calendar"
	"github.com/m04kA/monnas-booking/internal/api/handlers/get_calendar/mocks"
	"github.com/m04kA/monnas-booking/internal/service/calendar"
	"github.com/m04kA/monnas-booking/internal/service/calendar/models"
)

func TestHandle(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		setup func(m *mocks.MockCalendarService)
		want  int
	}{
		{
			name: "month built",
			url:  "/api/v1/admin/calendar?year=2025&month=3",
			setup: func(m *mocks.MockCalendarService) {
				m.EXPECT().Month(gomock.Any(), 2025, 3).Return(&models.CalendarResponse{Year: 2025, Month: 3}, nil)
			},
			want: http.StatusOK,
		},
		{
			name: "month out of range",
			url:  "/api/v1/admin/calendar?year=2025&month=0",
			setup: func(m *mocks.MockCalendarService) {
				m.EXPECT().Month(gomock.Any(), 2025, 0).Return(nil, calendar.ErrInvalidMonth)
			},
			want: http.StatusBadRequest,
		},
		{
			name:  "missing month",
			url:   "/api/v1/admin/calendar?year=2025",
			setup: func(*mocks.MockCalendarService) {},
			want:  http.StatusBadRequest,
		},
		{
			name: "storage failure",
			url:  "/api/v1/admin/calendar?year=2025&month=3",
			setup: func(m *mocks.MockCalendarService) {
				m.EXPECT().Month(gomock.Any(), 2025, 3).Return(nil, errors.New("db down"))
			},
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockCalendarService(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			handler.NewHandler(service, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
