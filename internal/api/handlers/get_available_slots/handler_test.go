package get_available_slots_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	handler "github.com/m04kA/monnas-booking/internal/api/handlers/get_available_slots"
	"github.com/m04kA/monnas-booking/internal/api/handlers/get_available_slots/mocks"
	"github.com/m04kA/monnas-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/monnas-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/monnas-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_Public(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := mocks.NewMockGetAvailableSlotsUseCase(ctrl)
	date := types.NewDate(2025, time.March, 10)

	useCase.EXPECT().
		Execute(gomock.Any(), &getAvailableSlots.Request{Date: date, Channel: domain.ChannelPublic}).
		Return(&getAvailableSlots.Response{
			Date:      date,
			Available: []types.TimeString{"09:00", "10:00:00"},
			Booked:    []types.TimeString{"09:30"},
		}, nil)

	rec := httptest.NewRecorder()
	handler.NewHandler(useCase, domain.ChannelPublic, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2025-03-10", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, handler.SlotsResponse{
		Date:      "2025-03-10",
		Available: []string{"09:00", "10:00"},
		Booked:    []string{"09:30"},
	}, body)
}

func TestHandle_AdminExclusion(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := mocks.NewMockGetAvailableSlotsUseCase(ctrl)

	useCase.EXPECT().Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
			require.NotNil(t, req.ExcludeID)
			assert.Equal(t, int64(42), *req.ExcludeID)
			assert.Equal(t, domain.ChannelAdmin, req.Channel)
			return &getAvailableSlots.Response{Date: req.Date}, nil
		})

	rec := httptest.NewRecorder()
	handler.NewHandler(useCase, domain.ChannelAdmin, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/availability?date=2025-03-10&excludeId=42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		err    error
		called bool
		want   int
	}{
		{name: "missing date", url: "/?", want: http.StatusBadRequest},
		{name: "impossible date", url: "/?date=2025-02-30", want: http.StatusBadRequest},
		{name: "bad exclude id", url: "/?date=2025-03-10&excludeId=x", want: http.StatusBadRequest},
		{name: "usecase rejects", url: "/?date=2025-03-10", err: getAvailableSlots.ErrInvalidInput, called: true, want: http.StatusBadRequest},
		{name: "unexpected", url: "/?date=2025-03-10", err: errors.New("boom"), called: true, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			useCase := mocks.NewMockGetAvailableSlotsUseCase(ctrl)
			if tt.called {
				useCase.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			}

			rec := httptest.NewRecorder()
			handler.NewHandler(useCase, domain.ChannelPublic, nopLogger{}).
				Handle(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
