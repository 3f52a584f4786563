package update_reservation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	handler "github.com/m04kA/monnas-booking/internal/api/handlers/update_reservation"
	"github.com/m04kA/monnas-booking/internal/api/handlers/update_reservation/mocks"
	"github.com/m04kA/monnas-booking/internal/domain"
	updateReservation "github.com/m04kA/monnas-booking/internal/usecase/update_reservation"
	"github.com/m04kA/monnas-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{
	"clientName": "Lucía",
	"clientPhone": "2494000000",
	"selectedDate": "2025-03-12",
	"selectedTime": "10:00",
	"selectedServices": ["masajes"],
	"status": "confirmed"
}`

func request(id, payload string) *http.Request {
	r := httptest.NewRequest(http.MethodPut, "/api/v1/admin/reservations/"+id, strings.NewReader(payload))
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func TestHandle_Updated(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := mocks.NewMockUpdateReservationUseCase(ctrl)

	useCase.EXPECT().Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *updateReservation.Request) (*updateReservation.Response, error) {
			assert.Equal(t, int64(42), req.ID)
			assert.Equal(t, types.NewDate(2025, time.March, 12), req.Date)
			assert.Equal(t, domain.StatusConfirmed, req.Status)
			return &updateReservation.Response{Reservation: &domain.Reservation{
				ID:           42,
				SelectedDate: req.Date,
				SelectedTime: req.Time,
				Status:       req.Status,
			}}, nil
		})

	rec := httptest.NewRecorder()
	handler.NewHandler(useCase, nopLogger{}).Handle(rec, request("42", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"selectedDate":"2025-03-12"`)
	assert.Contains(t, rec.Body.String(), `"selectedTime":"10:00"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: updateReservation.ErrReservationNotFound, want: http.StatusNotFound},
		{name: "slot taken", err: updateReservation.ErrSlotNotAvailable, want: http.StatusConflict},
		{name: "invalid", err: updateReservation.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "internal", err: updateReservation.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			useCase := mocks.NewMockUpdateReservationUseCase(ctrl)
			useCase.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			handler.NewHandler(useCase, nopLogger{}).Handle(rec, request("42", body))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_BadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := handler.NewHandler(mocks.NewMockUpdateReservationUseCase(ctrl), nopLogger{})

	for name, r := range map[string]*http.Request{
		"bad id":   request("x", body),
		"bad json": request("42", `{`),
		"bad date": request("42", strings.Replace(body, "2025-03-12", "2025-13-01", 1)),
		"bad time": request("42", strings.Replace(body, "10:00", "10h", 1)),
	} {
		rec := httptest.NewRecorder()
		h.Handle(rec, r)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}
