package get_booking_calendar_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	handler "github.com/m04kA/monnas-booking/internal/api/handlers/get_booking_calendar"
	"github.com/m04kA/monnas-booking/internal/api/handlers/get_booking_calendar/mocks"
	getBookingCalendar "github.com/m04kA/monnas-booking/internal/usecase/get_booking_calendar"
	"github.com/m04kA/monnas-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := mocks.NewMockGetBookingCalendarUseCase(ctrl)

	useCase.EXPECT().
		Execute(gomock.Any(), &getBookingCalendar.Request{Year: 2025, Month: 3}).
		Return(&getBookingCalendar.Response{
			Year:  2025,
			Month: 3,
			Days: []getBookingCalendar.Day{
				{Date: types.NewDate(2025, time.March, 10), InMonth: true, IsToday: true, Booked: []types.TimeString{"09:00:00"}, AvailableCount: 15, Selectable: true},
			},
		}, nil)

	rec := httptest.NewRecorder()
	handler.NewHandler(useCase, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability/calendar?year=2025&month=3", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Days, 1)
	assert.Equal(t, handler.DayResponse{
		Date: "2025-03-10", InMonth: true, IsToday: true, Booked: []string{"09:00"}, AvailableCount: 15, Selectable: true,
	}, body.Days[0])
}

func TestHandle_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := mocks.NewMockGetBookingCalendarUseCase(ctrl)
	useCase.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, getBookingCalendar.ErrInvalidMonth)

	h := handler.NewHandler(useCase, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/?year=2025", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/?year=2025&month=13", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
